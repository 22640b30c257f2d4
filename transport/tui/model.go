package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

type gameEngine interface {
	StartGame() error
	StopGame() error
	ResetGame()
	SetDifficulty(difficulty entity.Difficulty) error
	SubmitHumanMove(cell int) error
	Snapshot() entity.Snapshot
}

// changedMsg - the engine reported a change; the model re-reads the snapshot.
type changedMsg struct{}

type model struct {
	engine   gameEngine
	changes  <-chan struct{}
	snapshot entity.Snapshot
	cursor   int
	marks    Marks
	spinner  spinner.Model
	notice   string
	header   string
}

var (
	humanStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#007e50ff", Dark: "#6afd76ff"}).Render
	computerStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0003adff", Dark: "#5f61fcff"}).Render
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#960000ff", Dark: "#fc7e7eff"}).Render
	bracketStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#8a880fff", Dark: "#ddda1dff"}).Render
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#414141ff", Dark: "#8f8f8fff"}).Render
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#bb0000ff", Dark: "#df1010ff"}).Render
	alertStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).BorderForeground(lipgloss.Color("205"))
	alertTitleStyle = lipgloss.NewStyle().Bold(true)
)

func newModel(header string, engine gameEngine, changes <-chan struct{}, marks Marks) *model {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return &model{
		engine:   engine,
		changes:  changes,
		snapshot: engine.Snapshot(),
		marks:    marks,
		spinner:  s,
		header:   header,
	}
}

func (m *model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changedMsg:
		m.refresh()
		return m, tea.Batch(waitForChange(m.changes), m.tickIfThinking())

	case spinner.TickMsg:
		if !m.snapshot.BoardLocked {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up":
		if m.cursor >= 3 {
			m.cursor -= 3
		}
	case "down":
		if m.cursor < entity.BoardSize-3 {
			m.cursor += 3
		}
	case "left":
		if m.cursor%3 > 0 {
			m.cursor--
		}
	case "right":
		if m.cursor%3 < 2 {
			m.cursor++
		}

	case "enter", " ":
		err = m.engine.SubmitHumanMove(m.cursor)
	case "s":
		if m.snapshot.Started {
			err = m.engine.StopGame()
		} else {
			err = m.engine.StartGame()
		}
	case "r":
		if m.snapshot.Outcome.IsTerminal() {
			m.engine.ResetGame()
		}
	case "e":
		err = m.engine.SetDifficulty(entity.Easy)
	case "m":
		err = m.engine.SetDifficulty(entity.Medium)
	case "h":
		err = m.engine.SetDifficulty(entity.Hard)

	default:
		return m, nil
	}

	m.notice = noticeFor(err)
	m.refresh()

	return m, m.tickIfThinking()
}

func (m *model) refresh() {
	m.snapshot = m.engine.Snapshot()
}

func (m *model) tickIfThinking() tea.Cmd {
	if !m.snapshot.BoardLocked {
		return nil
	}
	return m.spinner.Tick
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(m.header)
	b.WriteString(m.difficultyLine())
	b.WriteString("\n\n")

	for row := range 3 {
		for col := range 3 {
			cell := row*3 + col
			b.WriteString(m.cellView(cell))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.snapshot.BoardLocked:
		b.WriteString(fmt.Sprintf("%s Computer is thinking\n", m.spinner.View()))
	case m.snapshot.Started:
		b.WriteString("Your move\n")
	case !m.snapshot.Outcome.IsTerminal():
		b.WriteString("Press s to start\n")
	}

	if a, ok := AlertFor(m.snapshot.Outcome); ok {
		b.WriteString(alertStyle.Render(fmt.Sprintf("%s\n%s\n\n[r] %s", alertTitleStyle.Render(a.Title), a.Message, a.Button)))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(noticeStyle(m.notice))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle("\narrows move • enter play • s start/stop • e/m/h difficulty • q quit\n"))

	return b.String()
}

func (m *model) difficultyLine() string {
	levels := []entity.Difficulty{entity.Easy, entity.Medium, entity.Hard}

	parts := make([]string, 0, len(levels))
	for _, level := range levels {
		label := level.String()
		if level == m.snapshot.Difficulty {
			label = selectedStyle("[" + label + "]")
		}
		parts = append(parts, label)
	}

	return "Difficulty: " + strings.Join(parts, " ")
}

func (m *model) cellView(cell int) string {
	mark := "·"
	if move := m.snapshot.Board[cell]; move != nil {
		mark = m.marks.For(move.Player)
		if move.Player == entity.Human {
			mark = humanStyle(mark)
		} else {
			mark = computerStyle(mark)
		}
	}

	if cell == m.cursor && m.snapshot.Started {
		return cursorStyle("[") + mark + cursorStyle("]")
	}

	return bracketStyle(" ") + mark + bracketStyle(" ")
}

func noticeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That square is taken."
	case errors.Is(err, apperror.ErrBoardLocked):
		return "Wait for the computer."
	case errors.Is(err, apperror.ErrGameFinished):
		return "Game over, press r to continue."
	case errors.Is(err, apperror.ErrGameIsNotStarted):
		return "Press s to start a game."
	case errors.Is(err, apperror.ErrGameInProgress):
		return "Difficulty can only change before the game starts."
	default:
		return err.Error()
	}
}
