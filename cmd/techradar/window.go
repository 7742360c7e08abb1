package main

import (
	"image"
	"image/png"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"github.com/Sant1agoAm1go/OAIT/cmd/techradar/uihelpers"
	"github.com/Sant1agoAm1go/OAIT/src/logging"
	"github.com/Sant1agoAm1go/OAIT/src/render"
)

// showWindow displays the chart and blocks until the window is closed. A missing
// display surface surfaces as a driver failure and ends the process.
func showWindow(img image.Image, opts render.Options) error {
	a := app.NewWithID("com.oait.techradar")
	w := a.NewWindow(opts.Title)

	chartImg := canvas.NewImageFromImage(img)
	chartImg.FillMode = canvas.ImageFillContain
	ww, wh := uihelpers.ComputeWindowSize(opts.Width, opts.Height, 1280, 900)
	chartImg.SetMinSize(fyne.NewSize(ww/2, wh/2))

	exportItem := fyne.NewMenuItem("Export PNG…", func() { exportChartPNG(w, img, "tech_radar.png") })
	w.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File", exportItem)))
	w.SetContent(container.NewStack(chartImg))
	w.Resize(fyne.NewSize(ww, wh))
	logging.Infof("showing %dx%d chart", opts.Width, opts.Height)
	w.ShowAndRun()
	return nil
}

func exportChartPNG(w fyne.Window, img image.Image, defaultName string) {
	if img == nil {
		dialog.ShowInformation("Export", "No chart to export.", w)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, img); err != nil {
			logging.Errorf("export %s: %v", wc.URI().Path(), err)
			dialog.ShowError(err, w)
			return
		}
		logging.Infof("exported chart to %s", wc.URI().Path())
	}, w)
	fs.SetFileName(defaultName)
	fs.Show()
}
