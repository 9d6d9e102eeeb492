package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/universal-downloader/internal/model"
)

// Progress calculation constants
const (
	MaxProgressPercent = 100
)

// JobRow is a compact row widget showing one download job
type JobRow struct {
	widget.BaseWidget

	job          *model.Job
	localization *Localization

	// UI components
	titleLabel    *widget.Label
	statusLabel   *widget.Label
	progressLabel *widget.Label
	speedEtaLabel *widget.Label

	// Action buttons
	revealBtn *widget.Button // show in file manager
	openBtn   *widget.Button // open with default app

	// Callbacks
	onReveal func(path string)
	onOpen   func(path string)
}

// NewJobRow creates a new job row widget
func NewJobRow(job *model.Job, localization *Localization) *JobRow {
	jr := &JobRow{
		job:          job,
		localization: localization,
	}
	jr.ExtendBaseWidget(jr)
	jr.createUI()
	jr.Update()
	return jr
}

// SetJob replaces the displayed job state and refreshes the row. The
// runner sends job copies, so the row keeps the latest one it saw.
func (jr *JobRow) SetJob(job *model.Job) {
	if job != nil {
		jr.job = job
	}
	jr.Update()
}

// SetCallbacks sets the action callbacks
func (jr *JobRow) SetCallbacks(onReveal, onOpen func(path string)) {
	jr.onReveal = onReveal
	jr.onOpen = onOpen
}

// ApplyProgress updates the transient progress fields from an event
func (jr *JobRow) ApplyProgress(percent float64, speed string, etaSec int, currentFile string) {
	jr.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, clampPercent(int(percent))))

	speedEtaText := speed
	if etaSec > 0 {
		if speedEtaText != "" {
			speedEtaText += MiddleDotSeparator
		}
		speedEtaText += formatETA(etaSec)
	}
	if speedEtaText == "" {
		speedEtaText = DashPlaceholder
	}
	jr.speedEtaLabel.SetText(speedEtaText)

	if currentFile != "" {
		jr.titleLabel.SetText(cleanDisplayText(currentFile))
	}

	jr.Refresh()
}

// Update refreshes the whole row from the job's current state
func (jr *JobRow) Update() {
	title := cleanDisplayText(jr.job.GetDisplayTitle())
	if jr.job.Kind == model.KindAudioPlaylist {
		title = IconMusic + " " + title
	}
	jr.titleLabel.SetText(title)

	switch jr.job.Status {
	case model.JobStatusFailed:
		jr.statusLabel.Importance = widget.DangerImportance
		jr.statusLabel.SetText(IconError + " " + jr.localization.GetText(KeyStatusFailed))
	case model.JobStatusSucceeded:
		jr.statusLabel.Importance = widget.SuccessImportance
		jr.statusLabel.SetText(jr.localization.GetText(KeyStatusSucceeded))
	case model.JobStatusRunning:
		jr.statusLabel.Importance = widget.HighImportance
		jr.statusLabel.SetText(IconPlay + " " + jr.localization.GetText(KeyStatusRunning))
	default:
		jr.statusLabel.Importance = widget.MediumImportance
		jr.statusLabel.SetText(jr.localization.GetText(KeyStatusPending))
	}

	switch jr.job.Status {
	case model.JobStatusSucceeded:
		jr.progressLabel.SetText("")
		jr.speedEtaLabel.SetText("")
	case model.JobStatusFailed:
		jr.progressLabel.SetText("")
		jr.speedEtaLabel.SetText(cleanDisplayText(jr.job.LastError))
	case model.JobStatusRunning:
		jr.progressLabel.SetText(fmt.Sprintf(ProgressLabelFormat, clampPercent(jr.job.Percent)))
	default:
		jr.progressLabel.SetText("")
		jr.speedEtaLabel.SetText("")
	}

	jr.updateButtons()
	jr.Refresh()
}

// createUI creates the UI components
func (jr *JobRow) createUI() {
	jr.titleLabel = widget.NewLabel("")
	jr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	jr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	jr.titleLabel.Alignment = fyne.TextAlignLeading

	jr.statusLabel = widget.NewLabel("")
	jr.statusLabel.Alignment = fyne.TextAlignTrailing
	jr.progressLabel = widget.NewLabel("")
	jr.progressLabel.Alignment = fyne.TextAlignTrailing
	jr.speedEtaLabel = widget.NewLabel("")
	jr.speedEtaLabel.Alignment = fyne.TextAlignLeading
	jr.speedEtaLabel.TextStyle = fyne.TextStyle{Monospace: true}

	jr.revealBtn = widget.NewButton(IconFolder, func() {
		if jr.onReveal != nil && jr.job.OutputPath != "" {
			jr.onReveal(jr.job.OutputPath)
		}
	})
	jr.revealBtn.Importance = widget.MediumImportance

	jr.openBtn = widget.NewButton(jr.localization.GetText(KeyOpen), func() {
		if jr.onOpen != nil && jr.job.OutputPath != "" {
			jr.onOpen(jr.job.OutputPath)
		}
	})
	jr.openBtn.Importance = widget.MediumImportance
}

// updateButtons updates button states based on job status
func (jr *JobRow) updateButtons() {
	if jr.job.Status == model.JobStatusSucceeded && jr.job.OutputPath != "" {
		jr.revealBtn.Enable()
		jr.openBtn.Enable()
	} else {
		jr.revealBtn.Disable()
		jr.openBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (jr *JobRow) CreateRenderer() fyne.WidgetRenderer {
	return &jobRowRenderer{jobRow: jr}
}

// jobRowRenderer renders the job row widget
type jobRowRenderer struct {
	jobRow *JobRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *jobRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *jobRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *jobRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *jobRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *jobRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *jobRowRenderer) createLayout() {
	jr := r.jobRow

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	// Status on top, speed/ETA and percent underneath
	rightSide := container.NewVBox(
		fixedWidth(StatusLabelWidth, jr.statusLabel),
		container.NewHBox(
			fixedWidth(SpeedLabelWidth, jr.speedEtaLabel),
			fixedWidth(PercentLabelWidth, jr.progressLabel),
		),
	)

	actionRow := container.NewHBox(jr.revealBtn, jr.openBtn)

	// Buttons pinned to the right edge, title takes the remaining width
	rightCluster := container.NewBorder(nil, nil, nil, actionRow, rightSide)
	mainContent := container.NewBorder(nil, nil, nil, rightCluster, jr.titleLabel)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}

// clampPercent keeps a percent value within the displayable range
func clampPercent(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > MaxProgressPercent {
		return MaxProgressPercent
	}
	return percent
}

// formatETA formats remaining seconds as mm:ss or hh:mm:ss
func formatETA(etaSec int) string {
	if etaSec <= 0 {
		return DashPlaceholder
	}
	hours := etaSec / 3600
	minutes := (etaSec % 3600) / 60
	seconds := etaSec % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// cleanDisplayText strips control characters that break single-line labels
func cleanDisplayText(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	return strings.TrimSpace(text)
}
