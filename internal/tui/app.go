package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/pinyinseg"
	"github.com/f3rmion/pinyinseg/internal/clipboard"
	"github.com/f3rmion/pinyinseg/internal/config"
)

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// App is the live segmentation demo: type pinyin, press Enter, see each
// syllable the parser emits and whether it hit a fatal error.
type App struct {
	input    textinput.Model
	settings config.Settings
	strict   bool

	syllables []string
	parseErr  error
	copied    bool

	width  int
	height int
}

// NewApp constructs the TUI model seeded with the CLI's default settings.
func NewApp(settings config.Settings) App {
	ti := textinput.New()
	ti.Placeholder = "Type pinyin, e.g. jintian tianqi bucuo"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return App{input: ti, settings: settings}
}

func (a App) Init() tea.Cmd {
	return textinput.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "enter":
			a.segment()
			return a, nil
		case "tab":
			a.strict = !a.strict
			a.segment()
			return a, nil
		case "y":
			if len(a.syllables) > 0 {
				if err := clipboard.Write(strings.Join(a.syllables, " ")); err == nil {
					a.copied = true
					return a, clearCopiedAfter(2 * time.Second)
				}
			}
			return a, nil
		}

	case clearCopiedMsg:
		a.copied = false
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) segment() {
	input := strings.TrimSpace(a.input.Value())
	a.syllables = nil
	a.parseErr = nil
	if input == "" {
		return
	}

	p := a.settings.Parser().PreserveSpaces(true)
	if a.strict {
		p = p.WithStrictness(pinyinparser.Strict)
	} else {
		p = p.WithStrictness(pinyinparser.Loose)
	}

	it := p.Parse(input)
	syllables, err := it.Collect()
	a.syllables = syllables
	a.parseErr = err
}

func (a App) View() string {
	var b strings.Builder

	mode := "loose"
	if a.strict {
		mode = "strict"
	}
	b.WriteString(titleStyle.Render("pinyinseg") + "  " + subtitleStyle.Render(mode))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	if a.parseErr != nil {
		b.WriteString(errorStyle.Render("error: " + a.parseErr.Error()))
		b.WriteString("\n")
	}

	if len(a.syllables) > 0 {
		b.WriteString(boxStyle.Render(a.renderSyllables()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpParts := []string{"enter: segment", "tab: toggle strict/loose"}
	if len(a.syllables) > 0 {
		helpParts = append(helpParts, "y: copy")
	}
	if a.copied {
		helpParts = append(helpParts, copiedStyle.Render("copied!"))
	}
	helpParts = append(helpParts, "esc: quit")
	b.WriteString(helpStyle.Render(strings.Join(helpParts, " • ")))

	return b.String()
}

func (a App) renderSyllables() string {
	var rows []string
	for i, s := range a.syllables {
		label := indexStyle.Render(fmt.Sprintf("%2d", i+1))
		pad := strings.Repeat(" ", max(0, 8-runewidth.StringWidth(s)))
		rows = append(rows, label+" "+syllableStyle.Render(s)+pad)
	}
	return subtitleStyle.Render("syllables") + "\n\n" + strings.Join(rows, "\n")
}
