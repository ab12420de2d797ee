package utils

import (
	"github.com/pterm/pterm"
)

var (
	// Logger instances
	Error = pterm.Error
	Debug = pterm.Debug
)

// InitLogger initializes the logger settings
func InitLogger(debugMode bool) {
	if debugMode {
		pterm.EnableDebugMessages()
	} else {
		pterm.DisableDebugMessages()
	}
}

// PrintBanner prints a compact header with the tool version
func PrintBanner(version string) {
	pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgDarkGray)).
		WithTextStyle(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)).
		Printf(" randarray v%s ", version)
	pterm.Println()
}
