package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sant1agoAm1go/OAIT/src/logging"
)

// Supported output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// ErrUnknownFormat is returned for output formats other than png and svg.
var ErrUnknownFormat = errors.New("unknown output format")

// ResolveFormat picks the output format: an explicit format wins, otherwise the
// file extension decides, otherwise PNG.
func ResolveFormat(path, format string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}
	switch f {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Export renders the chart headlessly and writes it to path. The hint overlay only
// applies to PNG output.
func (rd *Renderer) Export(path, format string) error {
	f, err := ResolveFormat(path, format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
	}
	var buf bytes.Buffer
	switch f {
	case FormatSVG:
		if err := rd.Render(SVG, &buf); err != nil {
			return err
		}
	default:
		img, err := rd.Image()
		if err != nil {
			return err
		}
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logging.Infof("wrote %s chart %dx%d to %s (%d bytes)", f, rd.opts.Width, rd.opts.Height, path, buf.Len())
	return nil
}
