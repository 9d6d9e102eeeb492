package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/universal-downloader/internal/batch"
	"github.com/ytget/universal-downloader/internal/config"
	"github.com/ytget/universal-downloader/internal/fetch"
	"github.com/ytget/universal-downloader/internal/model"
	"github.com/ytget/universal-downloader/internal/platform"
)

// Log pane limit
const (
	MaxLogLines = 200
)

// FetcherFactory builds a fetcher for one batch using its configuration
type FetcherFactory func(cfg config.Config) fetch.Fetcher

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	newFetcher   FetcherFactory

	// Input area
	urlEntry *widget.Entry
	dirEntry *widget.Entry

	// Controls
	startBtn    *widget.Button
	cancelBtn   *widget.Button
	settingsBtn *widget.Button

	// Batch display
	jobsBox         *fyne.Container
	rows            map[string]*JobRow
	overallProgress *widget.ProgressBar
	statusLabel     *widget.Label

	// Log pane
	logLines  []string
	logLabel  *widget.Label
	logScroll *container.Scroll

	// Active run state
	runMutex     sync.Mutex
	cancelRun    context.CancelFunc
	running      bool
	totalJobs    int
	finishedJobs int
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, newFetcher FetcherFactory) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the configured downloads directory exists
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Printf("Failed to create download directory %s: %v", downloadsDir, err)
	}

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		newFetcher:   newFetcher,
		rows:         make(map[string]*JobRow),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// URL input, one URL per line
	ui.urlEntry = widget.NewMultiLineEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURLs))
	ui.urlEntry.Wrapping = fyne.TextWrapOff
	ui.urlEntry.SetMinRowsVisible(4)

	// Download directory row
	ui.dirEntry = widget.NewEntry()
	ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
	browseBtn := widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseDirectory)
	dirRow := container.NewBorder(nil, nil,
		widget.NewLabel(ui.localization.GetText(KeyDownloadDirectory)), browseBtn, ui.dirEntry)

	// Control buttons
	ui.startBtn = widget.NewButton(ui.localization.GetText(KeyStart), ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance
	ui.cancelBtn = widget.NewButton(ui.localization.GetText(KeyCancel), ui.onCancelClick)
	ui.cancelBtn.Disable()
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	// Logo
	var logoImage *canvas.Image
	if logo, err := LoadLogoResource(); err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	}

	buttonItems := []fyne.CanvasObject{ui.startBtn, ui.cancelBtn, ui.settingsBtn}
	if logoImage != nil {
		buttonItems = append([]fyne.CanvasObject{logoImage}, buttonItems...)
	}
	buttonRow := container.NewHBox(buttonItems...)

	// Overall batch progress
	ui.overallProgress = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	topPanel := container.NewVBox(
		ui.urlEntry,
		dirRow,
		buttonRow,
		ui.overallProgress,
		ui.statusLabel,
	)

	// Job rows
	ui.jobsBox = container.NewVBox()
	jobsScroll := container.NewVScroll(ui.jobsBox)

	// Log pane at the bottom
	ui.logLabel = widget.NewLabel("")
	ui.logLabel.Wrapping = fyne.TextWrapWord
	ui.logLabel.TextStyle = fyne.TextStyle{Monospace: true}
	ui.logScroll = container.NewVScroll(ui.logLabel)
	ui.logScroll.SetMinSize(fyne.NewSize(0, LogPaneHeight))

	content := container.NewBorder(
		topPanel,     // top
		ui.logScroll, // bottom
		nil,          // left
		nil,          // right
		jobsScroll,   // center
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowDefaultWidth, WindowDefaultHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeySettings), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURLs))
	ui.startBtn.SetText(ui.localization.GetText(KeyStart))
	ui.cancelBtn.SetText(ui.localization.GetText(KeyCancel))
	for _, row := range ui.rows {
		row.Update()
	}
}

// onBrowseDirectory handles download directory browsing
func (ui *RootUI) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.dirEntry.SetText(uri.Path())
		ui.settings.SetDownloadDirectory(uri.Path())
	}, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.dirEntry.SetText(ui.settings.GetDownloadDirectory())
	})
}

// onStartClick validates input and starts a new batch
func (ui *RootUI) onStartClick() {
	urls := batch.SplitURLList(ui.urlEntry.Text)
	if len(urls) == 0 {
		ui.showToast(ui.localization.GetText(KeyPleaseEnterURL))
		return
	}

	ui.runMutex.Lock()
	if ui.running {
		ui.runMutex.Unlock()
		ui.showToast(ui.localization.GetText(KeyAlreadyRunning))
		return
	}
	ui.running = true
	ui.runMutex.Unlock()

	if dir := strings.TrimSpace(ui.dirEntry.Text); dir != "" {
		ui.settings.SetDownloadDirectory(dir)
	}

	cfg := ui.settings.Config()
	if err := cfg.Validate(); err != nil {
		ui.endRun()
		ui.showToast("Error: " + err.Error())
		return
	}
	if err := platform.CreateDirectoryIfNotExists(cfg.DownloadDir); err != nil {
		ui.endRun()
		ui.showToast("Error: " + err.Error())
		return
	}

	runner := batch.New(ui.newFetcher(cfg), cfg)
	ctx, cancel := context.WithCancel(context.Background())

	events, err := runner.Run(ctx, urls)
	if err != nil {
		cancel()
		ui.endRun()
		ui.showToast("Error: " + err.Error())
		return
	}

	log.Printf("Batch started with %d URLs", len(urls))

	ui.cancelRun = cancel
	ui.totalJobs = len(urls)
	ui.finishedJobs = 0
	ui.rows = make(map[string]*JobRow)
	ui.jobsBox.RemoveAll()
	ui.logLines = nil
	ui.logLabel.SetText("")
	ui.overallProgress.SetValue(0)
	ui.statusLabel.SetText(ui.localization.GetText(KeyBatchStarted))
	ui.startBtn.Disable()
	ui.cancelBtn.Enable()

	go ui.consumeEvents(events)
}

// onCancelClick cancels the running batch
func (ui *RootUI) onCancelClick() {
	ui.runMutex.Lock()
	cancel := ui.cancelRun
	ui.runMutex.Unlock()

	if cancel != nil {
		log.Printf("Cancelling batch")
		cancel()
		ui.statusLabel.SetText(ui.localization.GetText(KeyCancelling))
		ui.cancelBtn.Disable()
	}
}

// consumeEvents forwards runner events onto the UI thread until the
// channel closes.
func (ui *RootUI) consumeEvents(events <-chan model.Event) {
	for ev := range events {
		ev := ev
		fyne.Do(func() {
			ui.handleEvent(ev)
		})
	}
}

// handleEvent applies one runner event to the widgets. Runs on the UI thread.
func (ui *RootUI) handleEvent(ev model.Event) {
	switch ev.Type {
	case model.EventJobStarted:
		row := NewJobRow(ev.Job, ui.localization)
		row.SetCallbacks(ui.onRevealFile, ui.onOpenFile)
		ui.rows[ev.Job.ID] = row
		ui.jobsBox.Add(row)
		ui.appendLog(fmt.Sprintf("Downloading %s", ev.Job.URL))

	case model.EventJobProgress:
		if row, ok := ui.rows[ev.Job.ID]; ok {
			row.ApplyProgress(ev.Percent, ev.Speed, ev.ETASec, ev.CurrentFile)
		}
		ui.overallProgress.SetValue(ui.overallFraction(ev.Percent))

	case model.EventJobLog:
		ui.appendLog(ev.Message)

	case model.EventJobFinished:
		ui.finishedJobs++
		if row, ok := ui.rows[ev.Job.ID]; ok {
			row.SetJob(ev.Job)
		}
		if ev.Job.Status == model.JobStatusFailed {
			ui.appendLog(fmt.Sprintf("Failed: %s (%s)", ev.Job.GetDisplayTitle(), ev.Job.LastError))
		} else {
			ui.appendLog(fmt.Sprintf("Finished: %s", ev.Job.GetDisplayTitle()))
		}
		ui.overallProgress.SetValue(ui.overallFraction(0))

	case model.EventBatchFinished:
		ui.endRun()

		summary := ui.localization.GetText(KeyBatchFinished)
		if ev.Batch != nil {
			summary += ": " + ev.Batch.Summary()
		}
		ui.statusLabel.SetText(summary)
		ui.appendLog(summary)
		ui.overallProgress.SetValue(1)
		ui.startBtn.Enable()
		ui.cancelBtn.Disable()
		ui.showToast(summary)

		if ev.Batch != nil && ev.Batch.Succeeded() > 0 && ui.settings.GetAutoRevealOnComplete() {
			ui.onRevealFile(ui.settings.GetDownloadDirectory())
		}
	}
}

// endRun clears the active run state
func (ui *RootUI) endRun() {
	ui.runMutex.Lock()
	ui.running = false
	ui.cancelRun = nil
	ui.runMutex.Unlock()
}

// overallFraction maps finished jobs plus the current job's percent to 0..1
func (ui *RootUI) overallFraction(currentPercent float64) float64 {
	if ui.totalJobs == 0 {
		return 0
	}
	fraction := (float64(ui.finishedJobs) + currentPercent/100) / float64(ui.totalJobs)
	if fraction > 1 {
		fraction = 1
	}
	return fraction
}

// appendLog adds one line to the log pane, keeping it bounded
func (ui *RootUI) appendLog(line string) {
	if line == "" {
		return
	}
	ui.logLines = append(ui.logLines, line)
	if len(ui.logLines) > MaxLogLines {
		ui.logLines = ui.logLines[len(ui.logLines)-MaxLogLines:]
	}
	ui.logLabel.SetText(strings.Join(ui.logLines, "\n"))
	ui.logScroll.ScrollToBottom()
}

// showToast shows a transient popup message that hides itself
func (ui *RootUI) showToast(message string) {
	popup := widget.NewPopUp(widget.NewLabel(message), ui.window.Canvas())
	popup.Show()
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(popup.Hide)
	}()
}

// onRevealFile shows a finished download in the system file manager
func (ui *RootUI) onRevealFile(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("Error revealing %s: %v", path, err)
		ui.showToast(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onOpenFile opens a finished download with the default application
func (ui *RootUI) onOpenFile(path string) {
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		log.Printf("Error opening %s: %v", path, err)
		ui.showToast(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
	}
}
