package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alert-rush/internal/engine"
	"github.com/vovakirdan/alert-rush/internal/loop"
	"github.com/vovakirdan/alert-rush/internal/storage"
)

const (
	frameInterval = 100 * time.Millisecond
	bootDuration  = 1200 * time.Millisecond
)

// Model is the Bubble Tea model for the alert console. The engine runs on
// the controller's own timers; the model only renders snapshots and
// translates keys into mutator calls.
type Model struct {
	ctrl *loop.Controller
	runs *storage.Store // may be nil; persistence is best-effort

	keys KeyMap
	help help.Model

	width     int
	height    int
	highScore int
	runSaved  bool
	quitting  bool
}

// NewModel creates a console model bound to a controller.
func NewModel(ctrl *loop.Controller, runs *storage.Store) Model {
	m := Model{
		ctrl: ctrl,
		runs: runs,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
	if runs != nil {
		if hs, err := runs.HighScore(); err == nil {
			m.highScore = hs
		}
	}
	return m
}

// Init boots the engine and starts the render loop.
func (m Model) Init() tea.Cmd {
	m.ctrl.Boot()
	return tea.Batch(bootCmd(bootDuration), frameCmd(frameInterval))
}

// Update handles messages and drives the controller.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case bootDoneMsg:
		if m.ctrl.State().Status == engine.StatusBooting {
			m.ctrl.ShowStart()
		}
		return m, nil

	case frameMsg:
		m.maybeSaveRun()
		return m, frameCmd(frameInterval)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// maybeSaveRun persists the run once when it ends.
func (m *Model) maybeSaveRun() {
	st := m.ctrl.State()
	switch st.Status {
	case engine.StatusPlaying:
		m.runSaved = false
	case engine.StatusGameOver:
		if m.runSaved || st.Score == 0 {
			return
		}
		m.runSaved = true
		if st.Score > m.highScore {
			m.highScore = st.Score
		}
		if m.runs != nil {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.runs.SaveRun(storage.RunRecord{
				Score:          st.Score,
				MaxStreak:      st.MaxStreak,
				CompletedTasks: st.CompletedTasks,
				FailedTasks:    st.FailedTasks,
				Difficulty:     st.Difficulty,
				Tier:           st.Tier,
				DurationSecs:   int(st.Elapsed),
			})
		}
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.ctrl.Close()
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Mute) {
		m.ctrl.ToggleMute()
		return m, nil
	}

	st := m.ctrl.State()
	switch st.Status {
	case engine.StatusStartScreen:
		switch {
		case key.Matches(msg, m.keys.Tutorial) && !st.TutorialCompleted:
			m.ctrl.StartTutorial()
		case key.Matches(msg, m.keys.Start):
			m.ctrl.StartGame()
		}

	case engine.StatusTutorial:
		if msg.String() == "s" {
			m.ctrl.StartGame()
			return m, nil
		}
		m.handlePlayKey(msg, st)

	case engine.StatusPlaying:
		if key.Matches(msg, m.keys.Pause) {
			m.ctrl.Pause()
			return m, nil
		}
		m.handlePlayKey(msg, st)

	case engine.StatusPaused:
		if key.Matches(msg, m.keys.Pause) {
			m.ctrl.Resume()
		}

	case engine.StatusGameOver:
		if key.Matches(msg, m.keys.Restart) {
			m.ctrl.StartGame()
		}
	}

	return m, nil
}

// handlePlayKey processes queue navigation and task resolution.
func (m *Model) handlePlayKey(msg tea.KeyMsg, st *engine.State) {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		idx := int(s[0] - '1')
		if idx < len(st.Alerts) {
			m.ctrl.SelectAlert(st.Alerts[idx].ID)
		}
		return
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(st, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(st, +1)
	case key.Matches(msg, m.keys.Complete):
		if st.ActiveAlertID != "" {
			m.ctrl.CompleteTask(st.ActiveAlertID, 0)
		}
	case key.Matches(msg, m.keys.Fail):
		if st.ActiveAlertID != "" {
			m.ctrl.FailTask(st.ActiveAlertID)
		}
	}
}

// moveSelection shifts the active alert up or down the queue.
func (m *Model) moveSelection(st *engine.State, dir int) {
	if len(st.Alerts) == 0 {
		return
	}
	idx := -1
	for i, a := range st.Alerts {
		if a.ID == st.ActiveAlertID {
			idx = i
			break
		}
	}
	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(st.Alerts) {
		idx = len(st.Alerts) - 1
	}
	m.ctrl.SelectAlert(st.Alerts[idx].ID)
}

// View renders the current engine snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := m.ctrl.State()
	switch st.Status {
	case engine.StatusIdle, engine.StatusBooting:
		return renderBoot()

	case engine.StatusStartScreen:
		return renderStartScreen(st, m.highScore)

	case engine.StatusGameOver:
		return renderGameOver(st, m.highScore)

	default:
		view := renderHeader(st) + "\n\n" +
			renderAlerts(st) + "\n\n" +
			renderTask(st) + "\n\n" +
			m.help.View(m.keys)
		if st.Status == engine.StatusPaused {
			view += "\n\n" + titleStyle.Render("PAUSED") + dimStyle.Render("  press p to resume")
		}
		if st.Status == engine.StatusTutorial {
			view += "\n" + dimStyle.Render("tutorial: no stakes. press s to start your shift")
		}
		return view
	}
}

// Run starts the Bubble Tea program for a local session.
func Run(ctrl *loop.Controller, runs *storage.Store) error {
	p := tea.NewProgram(
		NewModel(ctrl, runs),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
