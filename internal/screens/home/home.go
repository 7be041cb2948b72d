package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problem"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/drill"
	"github.com/abhisek/mathdrill/internal/screens/stats"
	"github.com/abhisek/mathdrill/internal/selection"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu     components.Menu
	catalog  problem.Catalog
	opCounts map[problem.Op]int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen over the loaded catalog.
func New(catalog problem.Catalog, src selection.Source, problems store.ProblemRepo, events store.EventRepo) *HomeScreen {
	opCounts := make(map[problem.Op]int)
	for _, p := range catalog {
		opCounts[p.Op()]++
	}

	items := []components.MenuItem{
		{
			Label:    "Start drill",
			Hint:     "weighted practice round",
			Disabled: len(catalog) == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: drill.New(catalog, src, problems, events),
					}
				}
			},
		},
		{
			Label: "Statistics",
			Hint:  "per-operator history",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: stats.New(events)}
				}
			},
		},
		{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:     components.NewMenu(items),
		catalog:  catalog,
		opCounts: opCounts,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Ready to drill?"))
	b.WriteString("\n\n")

	if len(h.catalog) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No facts loaded yet. Run 'mathdrill add plus' first."))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(h.catalogLine()))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

// catalogLine summarizes the catalog per operator, in catalog order.
func (h *HomeScreen) catalogLine() string {
	parts := make([]string, 0, len(h.opCounts))
	for _, op := range h.catalog.Ops() {
		parts = append(parts, fmt.Sprintf("%s: %d", op, h.opCounts[op]))
	}
	return fmt.Sprintf("%d facts loaded   (%s)", len(h.catalog), strings.Join(parts, "  "))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
