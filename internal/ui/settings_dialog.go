package ui

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/universal-downloader/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	downloadDirEntry  *widget.Entry
	delaySecondsEntry *widget.Entry
	qualitySelect     *widget.Select
	videoFormatSelect *widget.Select
	audioFormatSelect *widget.Select
	browserSelect     *widget.Select
	languageSelect    *widget.Select
	autoRevealCheck   *widget.Check
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved is called
// after a confirmed save.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Pause between downloads, in seconds
	sd.delaySecondsEntry = widget.NewEntry()
	sd.delaySecondsEntry.SetPlaceHolder("600")

	// Quality ceiling selection
	qualityOptions := []string{}
	for _, q := range config.QualityOptions() {
		qualityOptions = append(qualityOptions, string(q))
	}
	sd.qualitySelect = widget.NewSelect(qualityOptions, nil)

	// Video container format
	videoOptions := []string{}
	for _, f := range config.VideoFormatOptions() {
		videoOptions = append(videoOptions, string(f))
	}
	sd.videoFormatSelect = widget.NewSelect(videoOptions, nil)

	// Audio format for music playlists
	audioOptions := []string{}
	for _, f := range config.AudioFormatOptions() {
		audioOptions = append(audioOptions, string(f))
	}
	sd.audioFormatSelect = widget.NewSelect(audioOptions, nil)

	// Browser to read cookies from
	sd.browserSelect = widget.NewSelect(config.BrowserOptions(), nil)

	sd.autoRevealCheck = widget.NewCheck(sd.localization.GetText(KeyAutoReveal), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDownloadDirectory)),
		downloadDirRow,

		widget.NewLabel(sd.localization.GetText(KeyMaxResolution)),
		sd.qualitySelect,

		widget.NewLabel(sd.localization.GetText(KeyVideoFormat)),
		sd.videoFormatSelect,

		widget.NewLabel(sd.localization.GetText(KeyAudioFormat)),
		sd.audioFormatSelect,

		widget.NewLabel(sd.localization.GetText(KeyCookieBrowser)),
		sd.browserSelect,

		widget.NewLabel(sd.localization.GetText(KeyDelaySeconds)),
		sd.delaySecondsEntry,

		sd.autoRevealCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 460))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.delaySecondsEntry.SetText(strconv.Itoa(int(sd.settings.GetInterJobDelay() / time.Second)))
	sd.qualitySelect.SetSelected(string(sd.settings.GetQuality()))
	sd.videoFormatSelect.SetSelected(string(sd.settings.GetVideoFormat()))
	sd.audioFormatSelect.SetSelected(string(sd.settings.GetAudioFormat()))
	sd.browserSelect.SetSelected(sd.settings.GetCookieBrowser())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnComplete())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	if sec, err := strconv.Atoi(sd.delaySecondsEntry.Text); err == nil {
		sd.settings.SetInterJobDelay(time.Duration(sec) * time.Second)
	}

	if sd.qualitySelect.Selected != "" {
		sd.settings.SetQuality(config.Quality(sd.qualitySelect.Selected))
	}

	if sd.videoFormatSelect.Selected != "" {
		sd.settings.SetVideoFormat(config.VideoFormat(sd.videoFormatSelect.Selected))
	}

	if sd.audioFormatSelect.Selected != "" {
		sd.settings.SetAudioFormat(config.AudioFormat(sd.audioFormatSelect.Selected))
	}

	if sd.browserSelect.Selected != "" {
		sd.settings.SetCookieBrowser(sd.browserSelect.Selected)
	}

	sd.settings.SetAutoRevealOnComplete(sd.autoRevealCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
