package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jontstaz/cinephage/internal/scoring"
)

// rankItem adapts one scored release to the bubbles list.
type rankItem struct {
	rank   int
	result scoring.Result
}

func (i rankItem) Title() string {
	marker := OKMarker.String()
	if !i.result.Accepted() {
		marker = FailMarker.String()
	}
	return fmt.Sprintf("%d. %s %s", i.rank, marker, i.result.Release.OriginalTitle)
}

func (i rankItem) Description() string {
	norm := scoring.Normalize(i.result.TotalScore)
	desc := fmt.Sprintf("score %d (%.0f/1000) • %d formats", i.result.TotalScore, norm, len(i.result.MatchedFormats))
	if i.result.IsBanned {
		desc += " • BANNED"
	}
	return desc
}

func (i rankItem) FilterValue() string {
	return i.result.Release.OriginalTitle
}

// RankModel is the TUI for browsing a batch of scored releases, best
// first, with a per-release breakdown view.
type RankModel struct {
	list     list.Model
	viewport viewport.Model
	results  []scoring.Result
	mode     string // "list" or "detail"
	width    int
	height   int
	ready    bool
}

// NewRankModel sorts the results by raw score descending and builds the
// list. The input slice is not modified.
func NewRankModel(results []scoring.Result) RankModel {
	sorted := make([]scoring.Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].TotalScore > sorted[b].TotalScore
	})

	items := make([]list.Item, len(sorted))
	for i, res := range sorted {
		items[i] = rankItem{rank: i + 1, result: res}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(Background).
		Background(AccentGold).
		Bold(true)
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().
		Foreground(Background).
		Background(AccentAmber)
	delegate.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(Foreground)
	delegate.Styles.NormalDesc = lipgloss.NewStyle().
		Foreground(Muted)

	l := list.New(items, delegate, 80, 20)
	l.Title = "RANKED RELEASES"
	l.Styles.Title = TitleStyle
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return RankModel{
		list:    l,
		results: sorted,
		mode:    "list",
	}
}

// Init initializes the TUI
func (m RankModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m RankModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.mode == "detail" {
				m.mode = "list"
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			if m.mode == "list" {
				if item, ok := m.list.SelectedItem().(rankItem); ok {
					m.mode = "detail"
					m.viewport.SetContent(m.detailContent(item))
					m.viewport.GotoTop()
				}
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		listHeight := msg.Height - 8
		if listHeight < 8 {
			listHeight = 8
		}
		m.list.SetSize(msg.Width-4, listHeight)
		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, listHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = listHeight
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.mode == "detail" {
		m.viewport, cmd = m.viewport.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m RankModel) detailContent(item rankItem) string {
	var content strings.Builder

	content.WriteString(RenderResult(item.result))
	content.WriteString("\n")
	content.WriteString(RenderParsed(item.result.Release))

	return content.String()
}

// View renders the TUI
func (m RankModel) View() string {
	var content strings.Builder

	switch m.mode {
	case "detail":
		content.WriteString(TitleStyle.Render("RELEASE DETAIL") + "\n")
		content.WriteString(m.viewport.View())
		content.WriteString("\n\n")
		content.WriteString(FormatFooter(
			FormatKeybinding("↑/↓", "scroll"),
			FormatKeybinding("esc", "back"),
			FormatKeybinding("q", "quit"),
		))

	default:
		content.WriteString(m.list.View())
		content.WriteString("\n\n")
		content.WriteString(FormatFooter(
			FormatKeybinding("enter", "detail"),
			FormatKeybinding("/", "filter"),
			FormatKeybinding("q", "quit"),
		))
	}

	mainStyle := lipgloss.NewStyle().
		Padding(1, 2).
		Width(m.width - 4)

	return mainStyle.Render(content.String())
}
