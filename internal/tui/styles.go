// package tui provides the interactive requester menu for Passwdgen.
// This file defines the shared lipgloss styles used across the different
// views to ensure a consistent look and feel.
package tui // import "github.com/passwdgen/passwdgen/internal/tui"

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // A nice teal/cyan
	colorMenu      = lipgloss.Color("220") // Yellow, for the command menu
	colorError     = lipgloss.Color("196") // A bright red
	colorSuccess   = lipgloss.Color("40")  // A nice green
)

// Styles defines the reusable lipgloss styles for the views.
var (
	// General
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	// Titles
	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true).
			Padding(1, 2)

	// The command menu listing the category codes
	menuStyle = lipgloss.NewStyle().Foreground(colorMenu)

	// The help screen body
	helpTextStyle = lipgloss.NewStyle().Foreground(colorHighlight)

	// Key hints at the bottom of a view
	helpStyle = lipgloss.NewStyle().Foreground(colorSubtle)

	// Error messages
	errorStyle = lipgloss.NewStyle().Foreground(colorError)

	// Success messages (the generated password)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
)
