// PulseBoard — System Dashboard
//
// A cross-platform desktop dashboard showing live system metrics in
// themed, fully configurable panels.
//
// Build:
//   go build -o pulseboard ./cmd/pulseboard
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o pulseboard.exe ./cmd/pulseboard
//   GOOS=darwin  GOARCH=amd64 go build -o pulseboard-darwin ./cmd/pulseboard
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/PulseBoard/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.pulseboard")
	window := application.NewWindow("PulseBoard — System Dashboard")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	appUI.Start()

	window.Resize(fyne.NewSize(1400, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
