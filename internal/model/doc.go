package model

// Package model defines domain data structures used across the app: download
// jobs, batches, status/kind enums, and the events the batch runner sends to
// the interface layer. Structures are designed for direct display in the UI
// and explicit state transitions.
