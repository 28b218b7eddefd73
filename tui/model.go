// Package tui: the bubbletea model driving the interactive lab.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/pathlab/editor"
	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/scenario"
	"github.com/katalvlaran/pathlab/search"
	"github.com/katalvlaran/pathlab/session"
)

// playInterval paces automatic playback.
const playInterval = 80 * time.Millisecond

// tickMsg carries one playback beat. Stale beats arriving after a
// pause are dropped in Update.
type tickMsg time.Time

func playTick() tea.Cmd {
	return tea.Tick(playInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// promptKind says what the text prompt, when visible, will do on enter.
type promptKind int

const (
	promptNone promptKind = iota
	promptSave
	promptOpen
)

// modeRing orders the search modes for tab cycling and digit picks.
var modeRing = []search.Mode{
	search.BreadthFirst,
	search.DepthFirst,
	search.UniformCost,
	search.GreedyBestFirst,
	search.AStar,
	search.WeightedAStar,
	search.FlowFieldSearch,
}

var heuristicRing = []grid.Heuristic{
	grid.HeuristicNone,
	grid.Manhattan,
	grid.Chebyshev,
	grid.Octile,
	grid.Euclidean,
}

// Model owns the board document, the replayable run over it, and the
// widgets around both. Edits apply immediately: every change to the
// board or the configuration rebuilds the run and keeps the scrub
// position at the same relative progress.
type Model struct {
	doc  *editor.Grid
	sess *session.Session

	keys    keyMap
	help    help.Model
	logview viewport.Model
	prompt  textinput.Model
	kind    promptKind

	cursor  grid.Point
	playing bool
	notice  string

	width, height int
}

// NewModel builds a model over doc with the given starting
// configuration. The first run executes before the model is returned,
// so View is meaningful immediately.
func NewModel(doc *editor.Grid, cfg session.Config) (Model, error) {
	sess, err := session.New(doc.Snapshot(), session.WithConfig(cfg))
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "scenario.yaml"
	ti.CharLimit = 128

	m := Model{
		doc:     doc,
		sess:    sess,
		keys:    defaultKeyMap(),
		help:    help.New(),
		logview: viewport.New(44, 12),
		prompt:  ti,
		cursor:  doc.Start(),
	}
	m.refreshLog()
	return m, nil
}

// Run drives the interactive program until the user quits.
func Run(doc *editor.Grid, cfg session.Config) error {
	m, err := NewModel(doc, cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.logview.Width = clampInt(msg.Width-m.doc.Size().X*2-14, 24, 72)
		m.logview.Height = maxInt(m.doc.Size().Y, 8)
		m.refreshLog()
		return m, nil

	case tickMsg:
		if !m.playing {
			return m, nil
		}
		m.seekBy(1)
		if m.sess.CurrentStep() >= m.sess.TotalSteps() {
			m.playing = false
			return m, nil
		}
		return m, playTick()

	case tea.KeyMsg:
		if m.kind != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.logview, cmd = m.logview.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)

	case key.Matches(msg, m.keys.Toggle):
		m.editAt(m.doc.Toggle)
	case key.Matches(msg, m.keys.Start):
		m.editAt(m.doc.SetStart)
	case key.Matches(msg, m.keys.End):
		m.editAt(m.doc.SetEnd)
	case key.Matches(msg, m.keys.CostUp):
		m.bumpCost(10)
	case key.Matches(msg, m.keys.CostDown):
		m.bumpCost(-10)
	case key.Matches(msg, m.keys.Scatter):
		if err := m.doc.ScatterObstacles(0.25, time.Now().UnixNano()); err != nil {
			m.notice = err.Error()
		} else {
			m.apply()
		}
	case key.Matches(msg, m.keys.Clear):
		m.doc.ClearAll()
		m.apply()

	case key.Matches(msg, m.keys.Mode):
		m.cycleMode(1)
	case key.Matches(msg, m.keys.ModeBack):
		m.cycleMode(-1)
	case key.Matches(msg, m.keys.ModeDigit):
		m.pickMode(msg.String())
	case key.Matches(msg, m.keys.Heuristic):
		m.cycleHeuristic()
	case key.Matches(msg, m.keys.Diagonals):
		m.toggleDiagonals()
	case key.Matches(msg, m.keys.WeightUp):
		m.bumpWeight(0.5)
	case key.Matches(msg, m.keys.WeightDown):
		m.bumpWeight(-0.5)
	case key.Matches(msg, m.keys.DepthUp):
		m.bumpDepth(1)
	case key.Matches(msg, m.keys.DepthDown):
		m.bumpDepth(-1)

	case key.Matches(msg, m.keys.Play):
		return m.togglePlay()
	case key.Matches(msg, m.keys.StepF):
		m.playing = false
		m.seekBy(1)
	case key.Matches(msg, m.keys.StepB):
		m.playing = false
		m.seekBy(-1)
	case key.Matches(msg, m.keys.Rewind):
		m.playing = false
		m.seekTo(0)
	case key.Matches(msg, m.keys.ToEnd):
		m.playing = false
		m.seekTo(m.sess.TotalSteps())

	case key.Matches(msg, m.keys.Save):
		return m.openPrompt(promptSave)
	case key.Matches(msg, m.keys.Open):
		return m.openPrompt(promptOpen)

	default:
		var cmd tea.Cmd
		m.logview, cmd = m.logview.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) togglePlay() (tea.Model, tea.Cmd) {
	if m.playing {
		m.playing = false
		return m, nil
	}
	if m.sess.TotalSteps() == 0 {
		return m, nil
	}
	// Replaying from the end means starting over.
	if m.sess.CurrentStep() >= m.sess.TotalSteps() {
		m.seekTo(0)
	}
	m.playing = true
	return m, playTick()
}

func (m Model) openPrompt(kind promptKind) (tea.Model, tea.Cmd) {
	m.playing = false
	m.kind = kind
	m.prompt.SetValue("")
	return m, m.prompt.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		path := strings.TrimSpace(m.prompt.Value())
		kind := m.kind
		m.kind = promptNone
		m.prompt.Blur()
		if path == "" {
			return m, nil
		}
		if kind == promptSave {
			m.saveScenario(path)
		} else {
			m.openScenario(path)
		}
		return m, nil
	case "esc":
		m.kind = promptNone
		m.prompt.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

//------------------------------- actions -------------------------------//

func (m *Model) moveCursor(dx, dy int) {
	next := m.cursor.Add(grid.Pt(dx, dy))
	size := m.doc.Size()
	if next.X < 0 || next.Y < 0 || next.X >= size.X || next.Y >= size.Y {
		return
	}
	m.cursor = next
}

// editAt runs one board edit at the cursor and rebuilds the run on
// success.
func (m *Model) editAt(edit func(grid.Point) error) {
	if err := edit(m.cursor); err != nil {
		m.notice = err.Error()
		return
	}
	m.apply()
}

func (m *Model) bumpCost(delta int) {
	next := m.doc.CostAt(m.cursor) + delta
	if next < 0 {
		next = 0
	}
	if next > 90 {
		next = 90
	}
	if err := m.doc.SetCost(m.cursor, next); err != nil {
		m.notice = err.Error()
		return
	}
	m.apply()
}

func (m *Model) pickMode(digit string) {
	idx := int(digit[0] - '1')
	if idx < 0 || idx >= len(modeRing) {
		return
	}
	m.setConfig(func() error { return m.sess.SetMode(modeRing[idx]) })
}

func (m *Model) cycleMode(delta int) {
	cur := 0
	for i, md := range modeRing {
		if md == m.sess.Config().Mode {
			cur = i
			break
		}
	}
	next := (cur + delta + len(modeRing)) % len(modeRing)
	m.setConfig(func() error { return m.sess.SetMode(modeRing[next]) })
}

func (m *Model) cycleHeuristic() {
	cur := 0
	for i, h := range heuristicRing {
		if h == m.sess.Config().Heuristic {
			cur = i
			break
		}
	}
	next := (cur + 1) % len(heuristicRing)
	m.setConfig(func() error { return m.sess.SetHeuristic(heuristicRing[next]) })
}

func (m *Model) toggleDiagonals() {
	next := grid.Conn8
	if m.sess.Config().Conn == grid.Conn8 {
		next = grid.Conn4
	}
	m.setConfig(func() error { return m.sess.SetConnectivity(next) })
}

func (m *Model) bumpWeight(delta float64) {
	next := m.sess.Config().Weight + delta
	if next < 0.5 {
		next = 0.5
	}
	if next > 4 {
		next = 4
	}
	m.setConfig(func() error { return m.sess.SetWeight(next) })
}

func (m *Model) bumpDepth(delta int) {
	next := m.sess.Config().DepthLimit + delta
	if next < 0 {
		next = 0
	}
	m.setConfig(func() error { return m.sess.SetDepthLimit(next) })
}

// setConfig funnels every configuration change through one place so
// the narration pane follows each rebuild.
func (m *Model) setConfig(change func() error) {
	m.notice = ""
	if err := change(); err != nil {
		m.notice = err.Error()
		return
	}
	m.refreshLog()
}

// apply pushes the edited board into the session. A rejected snapshot
// leaves the previous run on screen.
func (m *Model) apply() {
	m.notice = ""
	if err := m.sess.Apply(m.doc.Snapshot()); err != nil {
		m.notice = err.Error()
		return
	}
	m.refreshLog()
}

func (m *Model) seekBy(delta int) {
	if err := m.sess.StepBy(delta); err != nil {
		m.notice = err.Error()
		return
	}
	m.refreshLog()
}

func (m *Model) seekTo(step int) {
	if err := m.sess.SeekTo(step); err != nil {
		m.notice = err.Error()
		return
	}
	m.refreshLog()
}

func (m *Model) saveScenario(path string) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sc := scenario.FromSession(name, m.sess.Config(), m.sess.Snapshot())
	if err := sc.Save(path); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = "saved " + path
}

// openScenario swaps in a document loaded from disk. Everything is
// staged first, so a bad file leaves the current board untouched.
func (m *Model) openScenario(path string) {
	sc, err := scenario.Load(path)
	if err != nil {
		m.notice = err.Error()
		return
	}
	snap, err := sc.Snapshot()
	if err != nil {
		m.notice = err.Error()
		return
	}
	cfg, err := sc.Config()
	if err != nil {
		m.notice = err.Error()
		return
	}
	doc, err := editor.FromSnapshot(snap)
	if err != nil {
		m.notice = err.Error()
		return
	}
	sess, err := session.New(doc.Snapshot(), session.WithConfig(cfg))
	if err != nil {
		m.notice = err.Error()
		return
	}
	m.doc, m.sess = doc, sess
	m.cursor = doc.Start()
	m.refreshLog()
	m.notice = "loaded " + path
}

// refreshLog mirrors the replay narration into the viewport. The log
// holds exactly what has been replayed so far, so no filtering by
// step index is needed.
func (m *Model) refreshLog() {
	lg := m.sess.Log()
	if lg == nil {
		m.logview.SetContent("")
		return
	}
	var b strings.Builder
	for _, step := range lg.Steps() {
		for _, e := range lg.Entries(step) {
			if step == search.SeedStep {
				fmt.Fprintf(&b, "[init] %s\n", e.Message)
				continue
			}
			fmt.Fprintf(&b, "[%4d] %s\n", step, e.Message)
		}
	}
	m.logview.SetContent(b.String())
	m.logview.GotoBottom()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
