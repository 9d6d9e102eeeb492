package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/universal-downloader/internal/config"
	"github.com/ytget/universal-downloader/internal/convert"
	"github.com/ytget/universal-downloader/internal/cookies"
	"github.com/ytget/universal-downloader/internal/fetch"
	"github.com/ytget/universal-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.universal-downloader"
	AppName = "Universal Downloader"

	WindowWidth  = 720
	WindowHeight = 560
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Each batch gets a fetch service built from the settings active at
	// start time.
	newFetcher := func(cfg config.Config) fetch.Fetcher {
		return fetch.NewService(cfg, cookies.NewProvider(cfg.CookieBrowser), convert.NewService())
	}

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, newFetcher)

	// Show and run
	myWindow.ShowAndRun()
}
