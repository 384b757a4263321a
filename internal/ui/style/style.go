// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the installer.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Blue   = lipgloss.Color("#3B82F6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Info    = "ℹ"
	Check   = "✓"
	Cross   = "✗"
	Warning = "⚠"
	Rule    = "━"
)

// RuleWidth is the width of banner rules.
const RuleWidth = 60
