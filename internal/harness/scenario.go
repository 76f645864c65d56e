package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/petrih/glaze/internal/grid"
	"github.com/petrih/glaze/internal/layer"
	"github.com/petrih/glaze/internal/store"
)

// Scenario is a recorded paint session in file form: a grid description,
// the steps to perform, and optional assertions on the final canvas.
type Scenario struct {
	// Name uniquely identifies this scenario; golden files are keyed by it.
	Name string `yaml:"name"`

	// Description explains what the scenario exercises.
	Description string `yaml:"description,omitempty"`

	// Grid describes the canvas to build.
	Grid GridSpec `yaml:"grid"`

	// Steps are performed in order against a fresh grid.
	Steps []Step `yaml:"steps"`

	// Assertions validate final cell colors after all steps ran.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// GridSpec describes the canvas a scenario runs on.
type GridSpec struct {
	Style  string `yaml:"style"` // set | additive | sequence
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Step operation names.
const (
	OpDraw      = "draw"
	OpSpecial   = "special"
	OpUndo      = "undo"
	OpRedo      = "redo"
	OpBrushUp   = "brush_up"
	OpBrushDown = "brush_down"
)

// validOps lists every recognised step operation.
var validOps = []string{OpDraw, OpSpecial, OpUndo, OpRedo, OpBrushUp, OpBrushDown}

// Step is one session operation. Only draw uses the layer/position fields;
// Brush overrides the grid's current brush size for that draw when set.
type Step struct {
	Op    string `yaml:"op"`
	Layer string `yaml:"layer,omitempty"`
	X     int    `yaml:"x,omitempty"`
	Y     int    `yaml:"y,omitempty"`
	Brush *int   `yaml:"brush,omitempty"`
}

// Assertion pins the displayed color of one cell, as "#rrggbb".
type Assertion struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Color string `yaml:"color"`
}

// LoadScenario reads and validates a scenario YAML file. Unknown fields are
// rejected so typos fail loudly instead of silently skipping steps.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario for semantic errors: bad grid, unknown
// operations or layers, out-of-range coordinates and brush sizes.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("scenario needs a name")
	}
	if _, err := store.ParseKind(sc.Grid.Style); err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	if sc.Grid.Width <= 0 || sc.Grid.Height <= 0 {
		return fmt.Errorf("scenario %q: grid dimensions must be positive, got %dx%d",
			sc.Name, sc.Grid.Width, sc.Grid.Height)
	}

	for i, st := range sc.Steps {
		if err := sc.validateStep(st); err != nil {
			return fmt.Errorf("scenario %q step %d: %w", sc.Name, i+1, err)
		}
	}

	for i, a := range sc.Assertions {
		if a.X < 0 || a.X >= sc.Grid.Width || a.Y < 0 || a.Y >= sc.Grid.Height {
			return fmt.Errorf("scenario %q assertion %d: cell (%d,%d) outside %dx%d grid",
				sc.Name, i+1, a.X, a.Y, sc.Grid.Width, sc.Grid.Height)
		}
		if len(a.Color) != 7 || a.Color[0] != '#' {
			return fmt.Errorf("scenario %q assertion %d: color must be #rrggbb, got %q",
				sc.Name, i+1, a.Color)
		}
	}
	return nil
}

func (sc *Scenario) validateStep(st Step) error {
	known := false
	for _, op := range validOps {
		if st.Op == op {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown op %q: must be one of %v", st.Op, validOps)
	}

	if st.Op != OpDraw {
		if st.Layer != "" {
			return fmt.Errorf("op %q takes no layer", st.Op)
		}
		return nil
	}

	if _, ok := layer.ByName(st.Layer); !ok {
		return fmt.Errorf("unknown layer %q", st.Layer)
	}
	if st.X < 0 || st.X >= sc.Grid.Width || st.Y < 0 || st.Y >= sc.Grid.Height {
		return fmt.Errorf("draw target (%d,%d) outside %dx%d grid",
			st.X, st.Y, sc.Grid.Width, sc.Grid.Height)
	}
	if st.Brush != nil && (*st.Brush < grid.MinBrush || *st.Brush > grid.MaxBrush) {
		return fmt.Errorf("brush %d outside [%d, %d]", *st.Brush, grid.MinBrush, grid.MaxBrush)
	}
	return nil
}
