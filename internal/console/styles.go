package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorTitle   = lipgloss.Color("#06B6D4") // Cyan
	ColorMenu    = lipgloss.Color("#10B981") // Emerald
	ColorSubMenu = lipgloss.Color("#EC4899") // Pink
	ColorPrompt  = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorInfo    = lipgloss.Color("#06B6D4") // Cyan
)

const headerWidth = 64

// Styles are bound to one renderer, so output that is not a terminal gets
// no escape codes
type Styles struct {
	Title   lipgloss.Style
	Menu    lipgloss.Style
	SubMenu lipgloss.Style
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
}

func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(ColorTitle),
		Menu:    r.NewStyle().Foreground(ColorMenu),
		SubMenu: r.NewStyle().Foreground(ColorSubMenu),
		Prompt:  r.NewStyle().Foreground(ColorPrompt),
		Success: r.NewStyle().Bold(true).Foreground(ColorSuccess),
		Error:   r.NewStyle().Bold(true).Foreground(ColorError),
		Info:    r.NewStyle().Foreground(ColorInfo),
		Warning: r.NewStyle().Foreground(ColorPrompt),
	}
}

func (a *App) header(title string) {
	rule := strings.Repeat("=", headerWidth)
	pad := (headerWidth - len([]rune(title))) / 2
	if pad < 0 {
		pad = 0
	}
	centered := strings.Repeat(" ", pad) + title

	fmt.Fprintln(a.out, a.styles.Title.Render(rule))
	fmt.Fprintln(a.out, a.styles.Title.Render(centered))
	fmt.Fprintln(a.out, a.styles.Title.Render(rule))
}

func (a *App) mainMenu() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.styles.Menu.Render(strings.Join([]string{
		"[1] System info",
		"[2] List processes",
		"[3] Check file permissions",
		"[4] Folder size",
		"[5] Environment variables",
		"[6] Count files & directories",
		"[7] Ping host",
		"[8] Monitor CPU/RAM",
		"[0] Exit",
	}, "\n")))
}

func (a *App) envMenu() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, a.styles.SubMenu.Render(strings.Join([]string{
		"Env Vars:",
		"[1] List all",
		"[2] Get a variable",
		"[3] Set a variable",
		"[4] Delete a variable",
		"[0] Back",
	}, "\n")))
}

func (a *App) success(msg string) { fmt.Fprintln(a.out, a.styles.Success.Render(msg)) }

func (a *App) failure(msg string) { fmt.Fprintln(a.out, a.styles.Error.Render(msg)) }

func (a *App) info(msg string) { fmt.Fprintln(a.out, a.styles.Info.Render(msg)) }

func (a *App) warning(msg string) { fmt.Fprintln(a.out, a.styles.Warning.Render(msg)) }
