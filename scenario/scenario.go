// Package scenario: parsing, validation and the session bridge.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
	"github.com/katalvlaran/pathlab/session"
)

// Parse decodes one YAML document. Decoding is strict: unknown keys
// are rejected, so typos in hand-written files surface immediately.
// Parse does not validate cell references; call Validate (or Snapshot,
// which validates) before running the result.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var sc Scenario
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	return &sc, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the document against the grid rules: positive
// dimensions with room for two endpoints, all cell references in
// bounds, distinct endpoints, no wall on an endpoint, non-negative
// costs, and algorithm names that parse.
func (s *Scenario) Validate() error {
	// 1) Dimensions and endpoints.
	if s.Width < 1 || s.Height < 1 || s.Width*s.Height < 2 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, s.Width, s.Height)
	}
	size := grid.Pt(s.Width, s.Height)
	if !grid.InBounds(s.Start.Point(), size) {
		return fmt.Errorf("%w: start %s", ErrOutOfBounds, s.Start.Point())
	}
	if !grid.InBounds(s.End.Point(), size) {
		return fmt.Errorf("%w: end %s", ErrOutOfBounds, s.End.Point())
	}
	if s.Start == s.End {
		return fmt.Errorf("%w: %s", ErrEndpointOverlap, s.Start.Point())
	}

	// 2) Cell lists.
	var c Coord
	for _, c = range s.Walls {
		p := c.Point()
		if !grid.InBounds(p, size) {
			return fmt.Errorf("%w: wall %s", ErrOutOfBounds, p)
		}
		if p == s.Start.Point() || p == s.End.Point() {
			return fmt.Errorf("%w: %s", ErrReservedCell, p)
		}
	}
	var cc CostCell
	for _, cc = range s.Costs {
		p := cc.At.Point()
		if !grid.InBounds(p, size) {
			return fmt.Errorf("%w: cost cell %s", ErrOutOfBounds, p)
		}
		if cc.Cost < 0 {
			return fmt.Errorf("%w: %d at %s", ErrNegativeCost, cc.Cost, p)
		}
	}

	// 3) Algorithm names.
	_, err := s.Config()
	return err
}

// Config resolves the algorithm settings, falling back to the session
// defaults for absent fields. Unknown names surface the search and
// grid sentinels unchanged.
func (s *Scenario) Config() (session.Config, error) {
	cfg := session.DefaultConfig()
	if s.Mode != "" {
		m, err := search.ParseMode(s.Mode)
		if err != nil {
			return session.Config{}, err
		}
		cfg.Mode = m
	}
	if s.Heuristic != "" {
		h, err := grid.ParseHeuristic(s.Heuristic)
		if err != nil {
			return session.Config{}, err
		}
		cfg.Heuristic = h
	}
	if s.Connectivity != "" {
		conn, err := grid.ParseConnectivity(s.Connectivity)
		if err != nil {
			return session.Config{}, err
		}
		cfg.Conn = conn
	}
	if s.Weight > 0 {
		cfg.Weight = s.Weight
	}
	if s.DepthLimit > 0 {
		cfg.DepthLimit = s.DepthLimit
	}
	return cfg, nil
}

// Snapshot validates the document and materializes the run input.
// A cost listed for a wall cell keeps the wall and records the cost.
func (s *Scenario) Snapshot() (session.Snapshot, error) {
	if err := s.Validate(); err != nil {
		return session.Snapshot{}, err
	}

	snap := session.Snapshot{
		Size:      grid.Pt(s.Width, s.Height),
		Start:     s.Start.Point(),
		End:       s.End.Point(),
		Overrides: make(map[grid.Point]session.Override, len(s.Walls)+len(s.Costs)),
	}
	var c Coord
	for _, c = range s.Walls {
		snap.Overrides[c.Point()] = session.Override{Walkable: false}
	}
	var cc CostCell
	for _, cc = range s.Costs {
		p := cc.At.Point()
		o, ok := snap.Overrides[p]
		if !ok {
			o = session.Override{Walkable: true}
		}
		o.Cost = cc.Cost
		snap.Overrides[p] = o
	}
	return snap, nil
}

// FromSession captures live session state as a document. Walls and
// costs are emitted in row order, so saving the same state twice
// produces identical bytes.
func FromSession(name string, cfg session.Config, snap session.Snapshot) *Scenario {
	sc := &Scenario{
		Name:         name,
		Width:        snap.Size.X,
		Height:       snap.Size.Y,
		Start:        coordOf(snap.Start),
		End:          coordOf(snap.End),
		Mode:         cfg.Mode.String(),
		Heuristic:    cfg.Heuristic.String(),
		Connectivity: cfg.Conn.String(),
		Weight:       cfg.Weight,
		DepthLimit:   cfg.DepthLimit,
	}

	points := make([]grid.Point, 0, len(snap.Overrides))
	for p := range snap.Overrides {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})

	var p grid.Point
	for _, p = range points {
		o := snap.Overrides[p]
		if !o.Walkable {
			sc.Walls = append(sc.Walls, coordOf(p))
		}
		if o.Cost > 0 {
			sc.Costs = append(sc.Costs, CostCell{At: coordOf(p), Cost: o.Cost})
		}
	}
	return sc
}

// Marshal renders the document as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("scenario: marshal: %w", err)
	}
	return data, nil
}

// Save writes the document to path, creating or truncating the file.
func (s *Scenario) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scenario: write %s: %w", path, err)
	}
	return nil
}
