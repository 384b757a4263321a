package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/darkstorage/install/internal/core/domain"
	"github.com/darkstorage/install/internal/ui/output"
	"github.com/darkstorage/install/internal/ui/style"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	headerTitle  = "Dark Storage CLI - Local Installation"
	successTitle = "Dark Storage CLI installed successfully! 🚀"
)

// nextStep is one numbered entry of the closing guidance.
type nextStep struct {
	title    string
	commands []string
}

var nextSteps = []nextStep{
	{title: "Log in to your Dark Storage account:", commands: []string{"darkstorage login"}},
	{title: "Or use an API key:", commands: []string{"darkstorage login --key YOUR_API_KEY"}},
	{title: "Test it out:", commands: []string{"darkstorage whoami", "darkstorage ls"}},
	{title: "Get help:", commands: []string{"darkstorage --help"}},
}

func (a *App) println(lines ...string) {
	if len(lines) == 0 {
		_, _ = fmt.Fprintln(a.out)
		return
	}
	for _, line := range lines {
		_, _ = fmt.Fprintln(a.out, line)
	}
}

func (a *App) color(s, hex string) string {
	return output.Colorize(a.out, s, hex)
}

func (a *App) banner(title, hex string) {
	rule := strings.Repeat(style.Rule, style.RuleWidth)
	a.println()
	a.println(a.color(rule, hex))
	a.println(a.color("  "+title, hex))
	a.println(a.color(rule, hex))
	a.println()
}

func (a *App) printHeader() {
	a.banner(headerTitle, string(style.Blue))
}

// printNextSteps renders the success banner, usage guidance and the debug
// advisory.
func (a *App) printNextSteps(s *session) {
	a.banner(successTitle, string(style.Green))

	a.println("Next steps:")
	a.println()
	for i, step := range nextSteps {
		a.println(fmt.Sprintf("  %d. %s", i+1, step.title))
		for _, cmd := range step.commands {
			a.println("     " + a.color(cmd, string(style.Blue)))
		}
		a.println()
	}

	if s.cfg.DebugBuild {
		a.deps.Logger.Warn("This is a DEBUG build (not optimized for production)")
		a.println(fmt.Sprintf("  For production use: %s (without --dev)", domain.InstallerName))
		a.println()
	}
}

// printTimings lists the duration of every finished stage and the run total.
func (a *App) printTimings(s *session) {
	timings := a.deps.Tracer.Timings()
	if len(timings) == 0 {
		return
	}

	caser := cases.Title(language.English)
	width := len("Total")
	titles := make([]string, len(timings))
	for i, timing := range timings {
		titles[i] = caser.String(strings.ReplaceAll(timing.Name, "-", " "))
		width = max(width, len(titles[i]))
	}

	a.println(a.color("Stage timings:", string(style.Slate)))
	for i, timing := range timings {
		a.println(fmt.Sprintf("  %-*s  %s", width, titles[i], formatDuration(timing.Duration)))
	}
	a.println(fmt.Sprintf("  %-*s  %s", width, "Total", formatDuration(a.now().Sub(s.started))))
	a.println()
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
