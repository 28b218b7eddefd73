// Package tui: board rendering and the surrounding panes.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
)

// cellKind ranks what a cell shows. classify picks the first kind that
// applies, so endpoints beat walls, walls beat search state, and the
// cost tint only shows on untouched cells.
type cellKind int

const (
	cellPlain cellKind = iota
	cellStart
	cellEnd
	cellWall
	cellPath
	cellOpen
	cellClosed
	cellCost
)

func (m Model) classify(p grid.Point, onPath map[grid.Point]bool) cellKind {
	switch {
	case p == m.doc.Start():
		return cellStart
	case p == m.doc.End():
		return cellEnd
	case m.doc.IsBlocked(p):
		return cellWall
	case onPath[p]:
		return cellPath
	}
	switch m.sess.Nodes().At(p).State {
	case search.Open:
		return cellOpen
	case search.Closed:
		return cellClosed
	}
	if m.doc.CostAt(p) > 0 {
		return cellCost
	}
	return cellPlain
}

// glyph returns the two-column text for a cell. Terrain cost renders
// its tens digit so 10..90 stays one column wide.
func glyph(k cellKind, cost int) string {
	switch k {
	case cellStart:
		return "S "
	case cellEnd:
		return "E "
	case cellWall:
		return "██"
	case cellPath:
		return "● "
	case cellOpen:
		return "○ "
	case cellClosed:
		return "· "
	case cellCost:
		if d := cost / 10; d <= 9 {
			return fmt.Sprintf("%d ", d)
		}
		return "+ "
	default:
		return "  "
	}
}

func styleFor(k cellKind) lipgloss.Style {
	switch k {
	case cellStart:
		return startStyle
	case cellEnd:
		return endStyle
	case cellWall:
		return wallStyle
	case cellPath:
		return pathStyle
	case cellOpen:
		return openStyle
	case cellClosed:
		return closedStyle
	case cellCost:
		return costStyle
	default:
		return plainStyle
	}
}

// View renders the board, the run status, the narration pane, and the
// footer (help line, or the active prompt).
func (m Model) View() string {
	onPath := make(map[grid.Point]bool, 16)
	for _, c := range m.sess.Path() {
		onPath[c.Pos] = true
	}

	var rows strings.Builder
	size := m.doc.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := grid.Pt(x, y)
			k := m.classify(p, onPath)
			st := styleFor(k)
			if p == m.cursor {
				st = cursorStyle
			}
			rows.WriteString(st.Render(glyph(k, m.doc.CostAt(p))))
		}
		if y < size.Y-1 {
			rows.WriteByte('\n')
		}
	}
	board := boardStyle.Render(rows.String())

	side := lipgloss.JoinVertical(lipgloss.Left,
		m.statusView(),
		"",
		logHdrStyle.Render("narration"),
		m.logview.View(),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", side)

	footer := m.help.View(m.keys)
	switch m.kind {
	case promptSave:
		footer = "save to: " + m.prompt.View()
	case promptOpen:
		footer = "open: " + m.prompt.View()
	}

	parts := []string{titleStyle.Render("pathlab"), body}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) statusView() string {
	cfg := m.sess.Config()
	var b strings.Builder
	fmt.Fprintf(&b, "mode: %s", cfg.Mode)
	if cfg.Mode == search.WeightedAStar {
		fmt.Fprintf(&b, " (w=%.1f)", cfg.Weight)
	}
	fmt.Fprintf(&b, "\nheuristic: %s\nmoves: %s", cfg.Heuristic, cfg.Conn)
	if cfg.DepthLimit > 0 {
		fmt.Fprintf(&b, "\ndepth limit: %d", cfg.DepthLimit)
	}
	open, closed := m.sess.Counters()
	fmt.Fprintf(&b, "\nstep %d/%d  open %d  closed %d",
		m.sess.CurrentStep(), m.sess.TotalSteps(), open, closed)
	if m.sess.Found() {
		fmt.Fprintf(&b, "\npath cost %d in %s",
			m.sess.PathCost(), m.sess.Elapsed().Round(time.Microsecond))
	} else {
		b.WriteString("\nno path")
	}
	fmt.Fprintf(&b, "\ncursor %s", m.cursor)
	return statusStyle.Render(b.String())
}
