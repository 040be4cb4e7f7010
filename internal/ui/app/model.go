package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	allowancedto "tokenhub/internal/modules/allowance/dto"
	familydto "tokenhub/internal/modules/family/dto"
	ledgerdto "tokenhub/internal/modules/ledger/dto"
	"tokenhub/internal/ui/theme"
)

// Each port is the minimal interface this dashboard requires; the CLI
// handlers satisfy them directly.

type summaryPort interface {
	Summary(ctx context.Context, userID string) (allowancedto.SummaryOutput, error)
}

type historyPort interface {
	History(ctx context.Context, userID string) ([]ledgerdto.RecordOutput, error)
}

type spacePort interface {
	Current(ctx context.Context) (familydto.SpaceOutput, error)
}

type tabID int

const (
	tabDashboard tabID = iota
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{"Dashboard", "History"}

type summaryLoadedMsg struct {
	summary allowancedto.SummaryOutput
	err     error
}

type historyLoadedMsg struct {
	records []ledgerdto.RecordOutput
	err     error
}

type spaceLoadedMsg struct {
	space familydto.SpaceOutput
	err   error
}

// Model is the root Bubble Tea model: a read-only dashboard over today's
// allowance and the scan history. All business logic stays behind the ports.
type Model struct {
	userID    string
	allowance summaryPort
	ledger    historyPort
	family    spacePort

	activeTab tabID
	summary   allowancedto.SummaryOutput
	history   []ledgerdto.RecordOutput
	spaceName string
	status    string
	width     int
	height    int
}

func NewModel(userID string, allowance summaryPort, ledger historyPort, family spacePort) Model {
	return Model{
		userID:    userID,
		allowance: allowance,
		ledger:    ledger,
		family:    family,
		activeTab: tabDashboard,
		status:    "loading",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSummaryCmd(), m.loadHistoryCmd(), m.loadSpaceCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case summaryLoadedMsg:
		if msg.err != nil {
			m.status = "allowance: " + msg.err.Error()
		} else {
			m.summary = msg.summary
			m.status = "ready"
		}

	case historyLoadedMsg:
		if msg.err != nil {
			m.status = "history: " + msg.err.Error()
		} else {
			m.history = msg.records
		}

	case spaceLoadedMsg:
		if msg.err == nil {
			m.spaceName = msg.space.Name
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "r":
			m.status = "refreshing"
			return m, tea.Batch(m.loadSummaryCmd(), m.loadHistoryCmd(), m.loadSpaceCmd())
		}
	}
	return m, nil
}

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch m.activeTab {
	case tabDashboard:
		content = m.renderDashboard()
	case tabHistory:
		content = m.renderHistory(contentH)
	}
	content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderDashboard() string {
	rows := []string{
		theme.Title.Render("Today's tokens"),
		"",
		allowanceRow("physical activity", m.summary.Allowance.Steps, m.summary.StepsUsed, m.summary.StepsRemaining),
		allowanceRow("sleep", m.summary.Allowance.Sleep, m.summary.SleepUsed, m.summary.SleepRemaining),
	}
	if m.spaceName != "" {
		rows = append(rows, "", theme.Muted.Render("family space: ")+theme.Hot.Render(m.spaceName))
	}
	return theme.Pane.Render(strings.Join(rows, "\n"))
}

func allowanceRow(label string, allowance, used, remaining int) string {
	state := theme.Good
	if remaining == 0 {
		state = theme.Bad
	}
	return fmt.Sprintf("%-18s %s", label,
		state.Render(fmt.Sprintf("%d of %d remaining (used %d)", remaining, allowance, used)))
}

func (m Model) renderHistory(maxLines int) string {
	rows := []string{theme.Title.Render("Scan history"), ""}
	if len(m.history) == 0 {
		rows = append(rows, theme.Muted.Render("no scans recorded"))
	}
	limit := maxLines - 4
	if limit < 1 {
		limit = 1
	}
	for i, record := range m.history {
		if i >= limit {
			rows = append(rows, theme.Muted.Render(fmt.Sprintf("… and %d more", len(m.history)-i)))
			break
		}
		rows = append(rows, historyRow(record))
	}
	return theme.Pane.Render(strings.Join(rows, "\n"))
}

func historyRow(record ledgerdto.RecordOutput) string {
	when := time.UnixMilli(record.Timestamp).Format("Jan 02 15:04")
	var what string
	if record.Type == "mood" {
		what = "mood " + theme.Hot.Render(record.Mood)
	} else {
		what = fmt.Sprintf("%d x %s", record.Amount, record.Category)
	}
	return theme.Muted.Render(when) + "  " + what
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "tokenhub  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status + "  " + theme.Muted.Render("user: "+m.userID)
	right := theme.Muted.Render("r:refresh  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

func (m Model) loadSummaryCmd() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.allowance.Summary(context.Background(), m.userID)
		return summaryLoadedMsg{summary: summary, err: err}
	}
}

func (m Model) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := m.ledger.History(context.Background(), m.userID)
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m Model) loadSpaceCmd() tea.Cmd {
	return func() tea.Msg {
		space, err := m.family.Current(context.Background())
		return spaceLoadedMsg{space: space, err: err}
	}
}
