package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"srboli-wheel/internal/config"
	"srboli-wheel/internal/entries"
	"srboli-wheel/internal/render"
	"srboli-wheel/internal/ui"
	"srboli-wheel/internal/wheel"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	engine   *wheel.Engine
	history  *WinnerRing
	watcher  *entries.Watcher
	lastTick time.Time

	// a watched-file reload that arrived mid-spin
	pendingReload *entries.Reload
}

// Options configures a new AppModel.
type Options struct {
	Engine      *wheel.Engine
	Strategy    wheel.Strategy
	EntriesPath string // names file for --watch, may be empty
	Log         zerolog.Logger
}

// AppModel is the root Bubble Tea model for the wheel.
type AppModel struct {
	width  int
	height int

	cursor    int
	input     ui.InputState
	status    string
	statusErr bool
	strategy  wheel.Strategy
	path      string
	log       zerolog.Logger

	shared *shared

	// Cached snapshot
	state wheel.WheelState
}

// New creates a new AppModel around an engine.
func New(opts Options) AppModel {
	eng := opts.Engine
	if eng == nil {
		eng = wheel.New()
	}
	strategy := opts.Strategy
	if strategy == "" {
		strategy = wheel.StrategyUniform
	}
	return AppModel{
		status:   "Press SPACE to spin",
		strategy: strategy,
		path:     opts.EntriesPath,
		log:      opts.Log.With().Str("component", "app").Logger(),
		shared: &shared{
			engine:  eng,
			history: NewWinnerRing(config.HistorySize),
		},
		state: eng.State(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.input.Active() {
			return m.handleInput(msg)
		}
		return m.handleKey(msg)

	case TickMsg:
		m = m.advance(time.Time(msg))
		return m, tickCmd()

	case ReloadMsg:
		r := entries.Reload(msg)
		if m.shared.engine.Spinning() {
			m.shared.pendingReload = &r
			return m, nil
		}
		return m.applyReload(r), nil
	}

	return m, nil
}

// advance moves the spin forward by the time since the previous tick.
func (m AppModel) advance(now time.Time) AppModel {
	var dt time.Duration
	if !m.shared.lastTick.IsZero() {
		dt = now.Sub(m.shared.lastTick)
	}
	m.shared.lastTick = now

	eng := m.shared.engine
	if res, done := eng.Update(dt); done {
		m.shared.history.Push(res.Entry.Name)
		m = m.setStatus("Selected: "+res.Entry.Name, false)
		m.log.Info().Int("index", res.Index).Str("winner", res.Entry.Name).Msg("spin finished")
		if r := m.shared.pendingReload; r != nil {
			m.shared.pendingReload = nil
			m = m.applyReload(*r)
		}
	}
	m.state = eng.State()
	return m
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	eng := m.shared.engine
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		eng.Cancel()
		return m, tea.Quit

	case " ", "enter":
		plan, err := eng.Spin()
		switch {
		case errors.Is(err, wheel.ErrEmptyWheel):
			m = m.setStatus("No names. Add entries first.", true)
		case errors.Is(err, wheel.ErrSpinInProgress):
			m = m.setStatus("Already spinning", false)
		case err != nil:
			m = m.fail("spin", err)
		default:
			m = m.setStatus(fmt.Sprintf("Spinning... (%d turns)", plan.FullSpins), false)
		}

	case "a", "A":
		m.input = ui.InputState{Mode: ui.InputAdd}

	case "i", "I":
		m.input = ui.InputState{Mode: ui.InputImport, Buffer: m.path}

	case "d", "D", "delete", "backspace":
		if err := eng.RemoveEntry(m.cursor); err != nil {
			if errors.Is(err, wheel.ErrSpinInProgress) {
				m = m.setStatus("Wait for the wheel to stop", true)
			}
			break
		}
		m = m.setStatus("Entry removed", false)

	case "c", "C":
		eng.Clear()
		m.shared.pendingReload = nil
		m = m.setStatus("Wheel cleared", false)

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < eng.Len()-1 {
			m.cursor++
		}

	case "home":
		m.cursor = 0

	case "end":
		if eng.Len() > 0 {
			m.cursor = eng.Len() - 1
		}
	}

	m.clampCursor()
	m.state = eng.State()
	return m, nil
}

// handleInput edits the prompt line while it is open.
func (m AppModel) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input = ui.InputState{}
	case tea.KeyEnter:
		m = m.commitInput()
	case tea.KeyBackspace:
		if r := []rune(m.input.Buffer); len(r) > 0 {
			m.input.Buffer = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input.Buffer += " "
	case tea.KeyRunes:
		m.input.Buffer += string(msg.Runes)
	case tea.KeyCtrlC:
		m.shared.engine.Cancel()
		return m, tea.Quit
	}
	m.clampCursor()
	m.state = m.shared.engine.State()
	return m, nil
}

func (m AppModel) commitInput() AppModel {
	in := m.input
	m.input = ui.InputState{}
	eng := m.shared.engine

	switch in.Mode {
	case ui.InputAdd:
		name, weight := entries.ParseEntry(in.Buffer)
		if name == "" {
			return m.setStatus("Name is empty", true)
		}
		before := eng.Len()
		if err := eng.AddEntry(name, weight); err != nil {
			return m.fail("add", err)
		}
		if eng.Len() > before {
			m.cursor = eng.Len() - 1
		}
		return m.setStatus("Added "+name, false)

	case ui.InputImport:
		n, err := entries.Import(eng, in.Buffer)
		if err != nil {
			return m.fail("import", err)
		}
		m.log.Info().Str("path", in.Buffer).Int("added", n).Msg("names imported")
		return m.setStatus(fmt.Sprintf("Imported %d names", n), false)
	}
	return m
}

// applyReload resyncs the wheel with the watched file.
func (m AppModel) applyReload(r entries.Reload) AppModel {
	if r.Err != nil {
		return m.fail("reload", r.Err)
	}
	names := entries.FilterNew(nil, r.Names)
	if err := m.shared.engine.SetEntries(entries.ToEntries(names)); err != nil {
		return m.fail("reload", err)
	}
	m.log.Info().Str("path", r.Path).Int("names", len(names)).Msg("names reloaded")
	m.clampCursor()
	m.state = m.shared.engine.State()
	return m.setStatus(fmt.Sprintf("Reloaded %d names", len(names)), false)
}

func (m AppModel) setStatus(s string, isErr bool) AppModel {
	m.status = s
	m.statusErr = isErr
	return m
}

func (m AppModel) fail(op string, err error) AppModel {
	m.log.Warn().Str("op", op).Err(err).Msg("operation failed")
	return m.setStatus(op+": "+err.Error(), true)
}

func (m *AppModel) clampCursor() {
	n := m.shared.engine.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing wheel..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 6 {
		bodyH = 6
	}

	wheelW := m.width * 2 / 3
	if wheelW < 30 {
		wheelW = 30
	}
	listW := m.width - wheelW
	if listW < 20 {
		listW = 20
		wheelW = m.width - listW
	}

	st := m.state
	menuBar := ui.RenderMenuBar(m.width, string(m.strategy), st.Spinning)

	innerW := wheelW - 4
	innerH := bodyH - 3
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 6 {
		innerH = 6
	}
	wheelContent := render.Render(innerW, innerH, st)
	legend := render.RenderLegend(innerW, st)
	wheelPanel := ui.RenderWheelPanel(wheelW, bodyH, wheelContent, legend, st.Spinning)

	entryList := ui.RenderEntryList(st, listW, bodyH, m.cursor, m.shared.history.Values(), m.input)

	statusBar := ui.RenderStatusBar(m.width, m.status, m.statusErr, len(st.Entries), wheel.NormalizeDeg(st.RotationAngle))

	return ui.ComposeLayout(menuBar, wheelPanel, entryList, statusBar)
}

// StartWatcher re-imports the names file whenever it changes. Reloads are
// delivered through the program so the engine is only touched from Update.
// Must be called before p.Run().
func (m *AppModel) StartWatcher(ctx context.Context, p *tea.Program) error {
	if m.path == "" {
		return nil
	}
	w := entries.NewWatcher(m.path, config.ReloadDebounce, m.log)
	if err := w.Start(ctx, func(r entries.Reload) { p.Send(ReloadMsg(r)) }); err != nil {
		return err
	}
	m.shared.watcher = w
	return nil
}

// StopWatcher stops the file watcher. Call it after p.Run() returns so a
// pending Send is released by the program shutting down.
func (m AppModel) StopWatcher() {
	if m.shared.watcher != nil {
		m.shared.watcher.Stop()
		m.shared.watcher = nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
