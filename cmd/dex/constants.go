package main

// Default limits for CLI commands.
const (
	DefaultFindLimit    = 10
	DefaultHistoryLimit = 10
)

// Output formats.
var (
	listFormats = []string{"table", "json", "csv", "markdown"}
	showFormats = []string{"text", "json"}
)
