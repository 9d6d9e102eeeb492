package platform

// Package platform contains OS integration helpers: filesystem
// directories and opening files or folders with the system tools.
