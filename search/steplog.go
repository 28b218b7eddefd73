package search

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pathlab/grid"
)

// SeedStep is the pseudo-index holding entries recorded during Init,
// before the first productive step (which records at index 0).
const SeedStep = -1

// StepKind classifies a narration entry for filtering and styling.
type StepKind uint8

const (
	// StepInit marks seeding during Init.
	StepInit StepKind = iota
	// StepExpand marks a cell being closed.
	StepExpand
	// StepRelax marks a neighbor being opened or improved.
	StepRelax
	// StepSkip marks a stale frontier entry being discarded.
	StepSkip
	// StepGoal marks the goal being reached.
	StepGoal
	// StepNoPath marks frontier exhaustion before the goal.
	StepNoPath
	// StepDone marks a step request arriving after completion.
	StepDone
)

// String returns a short lowercase label for rendering.
func (k StepKind) String() string {
	switch k {
	case StepInit:
		return "init"
	case StepExpand:
		return "expand"
	case StepRelax:
		return "relax"
	case StepSkip:
		return "skip"
	case StepGoal:
		return "goal"
	case StepNoPath:
		return "no-path"
	case StepDone:
		return "done"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Entry is one narration line: a human-readable message, its kind, and
// the cell it concerns when one applies.
type Entry struct {
	// Message is the rendered narration line.
	Message string
	// At is the cell the entry concerns; meaningful only when HasPoint.
	At grid.Point
	// HasPoint reports whether At is set.
	HasPoint bool
	// Kind classifies the entry.
	Kind StepKind
}

// StepLog groups narration entries by the step index that produced
// them, so a replay UI can show exactly what one scrubbed step did.
// Entries recorded during Init live at SeedStep.
type StepLog struct {
	entries map[int][]Entry
	count   int
}

// NewStepLog returns an empty log.
func NewStepLog() *StepLog {
	return &StepLog{entries: make(map[int][]Entry)}
}

// Append records e under the given step index.
func (l *StepLog) Append(step int, e Entry) {
	l.entries[step] = append(l.entries[step], e)
	l.count++
}

// Entries returns the entries recorded under step, in recording order.
// The returned slice is owned by the log; callers must not modify it.
func (l *StepLog) Entries(step int) []Entry {
	return l.entries[step]
}

// Len returns the total number of entries across all steps.
func (l *StepLog) Len() int {
	return l.count
}

// Steps returns every index holding at least one entry, ascending
// (SeedStep first when present).
func (l *StepLog) Steps() []int {
	out := make([]int, 0, len(l.entries))
	for s := range l.entries {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}
