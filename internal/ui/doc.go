package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It collects URLs from the user, starts batch runs, and renders job rows, a log
// pane, and settings. All UI strings are localized via Localization.
