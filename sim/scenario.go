package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joebhakim/street-crossing-sim/sim/trace"
)

// NodeSpec is the YAML form of a Node.
type NodeSpec struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
	X   int `yaml:"x"`
	Y   int `yaml:"y"`
}

// Node converts ns into a Node.
func (ns NodeSpec) Node() Node {
	return Node{Row: ns.Row, Col: ns.Col, X: ns.X, Y: ns.Y}
}

// GridConfig describes the city grid.
type GridConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	Crossing Lengths `yaml:"crossing"`
	Block    Lengths `yaml:"block"`
}

// Scenario holds one simulation configuration, loadable from a YAML file.
// Nil Start/End mean the grid's top-left and bottom-right corners.
type Scenario struct {
	Grid        GridConfig `yaml:"grid"`
	Start       *NodeSpec  `yaml:"start"`
	End         *NodeSpec  `yaml:"end"`
	Strategy    string     `yaml:"strategy"`
	Strategies  []string   `yaml:"strategies"`
	Runs        int        `yaml:"runs"`
	CompareRuns int        `yaml:"compare_runs"`
	Seed        int64      `yaml:"seed"`
	Workers     int        `yaml:"workers"`
	Trace       string     `yaml:"trace"`
}

// DefaultScenario returns the reference configuration: a 3×4 grid with
// short crossings and long blocks, TL to BR.
func DefaultScenario() *Scenario {
	return &Scenario{
		Grid: GridConfig{
			Rows:     3,
			Cols:     4,
			Crossing: Lengths{Vertical: 0.5, Horizontal: 1.0},
			Block:    Lengths{Vertical: 4.0, Horizontal: 3.0},
		},
		Strategy:    StrategyRandom.String(),
		Strategies:  []string{"random", "oracular", "signal_observer", "edge"},
		Runs:        5000,
		CompareRuns: 200,
		Seed:        42,
		Workers:     1,
		Trace:       string(trace.TraceLevelNone),
	}
}

// LoadScenario reads a YAML scenario file. Fields absent from the file keep
// their DefaultScenario values; unknown fields are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return sc, nil
}

// ParseScenario decodes YAML scenario data over the defaults.
func ParseScenario(data []byte) (*Scenario, error) {
	sc := DefaultScenario()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return sc, nil
}

// Endpoints returns the journey start and end nodes.
func (sc *Scenario) Endpoints() (start, end Node) {
	start = Node{}
	end = Node{Row: sc.Grid.Rows - 1, Col: sc.Grid.Cols - 1, X: 1, Y: 1}
	if sc.Start != nil {
		start = sc.Start.Node()
	}
	if sc.End != nil {
		end = sc.End.Node()
	}
	return start, end
}

// PrimaryStrategy returns the parsed single-strategy setting.
func (sc *Scenario) PrimaryStrategy() (Strategy, error) {
	return ParseStrategy(sc.Strategy)
}

// ComparedStrategies returns the parsed comparison list.
func (sc *Scenario) ComparedStrategies() ([]Strategy, error) {
	out := make([]Strategy, 0, len(sc.Strategies))
	for _, name := range sc.Strategies {
		s, err := ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// BatchOptions returns the batch settings of the scenario.
func (sc *Scenario) BatchOptions() BatchOptions {
	return BatchOptions{Seed: sc.Seed, Workers: sc.Workers}
}

// Build constructs the scenario's graph and layout.
func (sc *Scenario) Build() (*Graph, Layout, error) {
	return BuildCityGraph(sc.Grid.Rows, sc.Grid.Cols, sc.Grid.Crossing, sc.Grid.Block)
}

// Validate checks names, counts, and that the endpoints lie in the grid
// with the start no further east or south than the end.
func (sc *Scenario) Validate() error {
	if sc.Grid.Rows < 1 || sc.Grid.Cols < 1 {
		return fmt.Errorf("%w: dimensions must be at least 1x1, got %dx%d", ErrInvalidGrid, sc.Grid.Rows, sc.Grid.Cols)
	}
	if err := sc.Grid.Crossing.validate("crossing"); err != nil {
		return err
	}
	if err := sc.Grid.Block.validate("block"); err != nil {
		return err
	}
	if !ValidStrategies[sc.Strategy] {
		return fmt.Errorf("%w %q", ErrUnknownStrategy, sc.Strategy)
	}
	seen := make(map[string]bool, len(sc.Strategies))
	for _, name := range sc.Strategies {
		if !ValidStrategies[name] {
			return fmt.Errorf("%w %q", ErrUnknownStrategy, name)
		}
		if seen[name] {
			return fmt.Errorf("strategy %q listed twice", name)
		}
		seen[name] = true
	}
	if sc.Runs < 0 || sc.CompareRuns < 0 {
		return fmt.Errorf("runs must be non-negative, got runs=%d compare_runs=%d", sc.Runs, sc.CompareRuns)
	}
	if sc.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", sc.Workers)
	}
	if !trace.IsValidTraceLevel(sc.Trace) {
		return fmt.Errorf("unknown trace level %q", sc.Trace)
	}

	start, end := sc.Endpoints()
	for name, n := range map[string]Node{"start": start, "end": end} {
		if n.Row < 0 || n.Row >= sc.Grid.Rows || n.Col < 0 || n.Col >= sc.Grid.Cols ||
			n.X < 0 || n.X > 1 || n.Y < 0 || n.Y > 1 {
			return fmt.Errorf("%s node %v is outside the %dx%d grid", name, n, sc.Grid.Rows, sc.Grid.Cols)
		}
	}
	if start.Col*2+start.X > end.Col*2+end.X || start.Row*2+start.Y > end.Row*2+end.Y {
		return fmt.Errorf("end %v is not reachable from start %v by east/south moves", end, start)
	}
	return nil
}
