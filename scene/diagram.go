// Package scene keeps a set of shapes in step with a diagram description.
//
// A Diagram lists cells: vertices with bounds and edges with points. A
// Renderer creates one shape per cell through the shape registry, applies
// the style resolved from a stylesheet, redraws it into a
// recording.Document and attaches a text label when the cell has a value.
// Calling Sync again with a changed diagram repaints the surviving cells
// and destroys the shapes of removed ones.
//
// Example:
//
//	d, err := scene.Load("diagram.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc := recording.NewDocument(d.Width, d.Height)
//	r := scene.NewRenderer(doc, nil)
//	if err := r.Sync(d); err != nil {
//	    log.Fatal(err)
//	}
//	b := svg.NewBackend()
//	_ = doc.Playback(b)
package scene

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/gogpu/shape/geom"
	"github.com/gogpu/shape/internal/config"
	"github.com/gogpu/shape/style"
)

// Errors returned by Validate.
var (
	ErrDuplicateID = errors.New("scene: duplicate cell id")
	ErrUnknownCell = errors.New("scene: unknown cell")
	ErrParentCycle = errors.New("scene: parent cycle")
	ErrMissingID   = errors.New("scene: cell without id")
)

// Geometry is the position and size of a vertex.
type Geometry struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Rect returns g as a geom.Rect.
func (g Geometry) Rect() geom.Rect {
	return geom.NewRect(g.X, g.Y, g.Width, g.Height)
}

// Point is an edge waypoint.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// Cell is one vertex or edge of a diagram.
//
// Bounds and Points are relative to the parent cell's origin. A cell with
// points, a source or a target is an edge; the end points of an edge
// attached to a terminal are computed from the terminal's bounds.
type Cell struct {
	ID     string   `yaml:"id" toml:"id"`
	Shape  string   `yaml:"shape" toml:"shape"`
	Bounds Geometry `yaml:"bounds" toml:"bounds"`
	Points []Point  `yaml:"points" toml:"points"`
	Style  string   `yaml:"style" toml:"style"`
	Value  string   `yaml:"value" toml:"value"`
	Parent string   `yaml:"parent" toml:"parent"`
	Source string   `yaml:"source" toml:"source"`
	Target string   `yaml:"target" toml:"target"`
}

// IsEdge reports whether c is drawn as an edge.
func (c *Cell) IsEdge() bool {
	return len(c.Points) > 0 || c.Source != "" || c.Target != ""
}

// Diagram is a complete drawing description.
type Diagram struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Background string `yaml:"background" toml:"background"`

	// Stylesheet is the path of a stylesheet file. Relative paths are
	// resolved against the directory of the diagram file.
	Stylesheet string `yaml:"stylesheet" toml:"stylesheet"`

	// Styles are named styles added to the stylesheet.
	Styles map[string]style.Style `yaml:"styles" toml:"styles"`

	Cells []Cell `yaml:"cells" toml:"cells"`
}

// Load reads a diagram file, choosing YAML or TOML by extension, and
// validates it.
func Load(path string) (*Diagram, error) {
	var d Diagram
	if err := config.Load(path, &d); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if d.Stylesheet != "" && !filepath.IsAbs(d.Stylesheet) {
		d.Stylesheet = filepath.Join(filepath.Dir(path), d.Stylesheet)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Decode reads a diagram in the named format ("yaml" or "toml") and
// validates it. A relative stylesheet path is left as is.
func Decode(r io.Reader, format string) (*Diagram, error) {
	f, err := config.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	var d Diagram
	if err := config.Decode(r, f, &d); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks that cell ids are unique and that parents, sources and
// targets name existing cells without forming a cycle.
func (d *Diagram) Validate() error {
	ids := make(map[string]*Cell, len(d.Cells))
	for i := range d.Cells {
		c := &d.Cells[i]
		if c.ID == "" {
			return fmt.Errorf("%w (index %d)", ErrMissingID, i)
		}
		if _, dup := ids[c.ID]; dup {
			return fmt.Errorf("%w %q", ErrDuplicateID, c.ID)
		}
		ids[c.ID] = c
	}
	for _, c := range d.Cells {
		for _, ref := range []string{c.Parent, c.Source, c.Target} {
			if ref == "" {
				continue
			}
			if _, ok := ids[ref]; !ok {
				return fmt.Errorf("%w %q of cell %q", ErrUnknownCell, ref, c.ID)
			}
		}
	}
	for _, c := range d.Cells {
		seen := map[string]bool{c.ID: true}
		for p := c.Parent; p != ""; p = ids[p].Parent {
			if seen[p] {
				return fmt.Errorf("%w at cell %q", ErrParentCycle, c.ID)
			}
			seen[p] = true
		}
	}
	return nil
}

// Cell returns the cell with the given id.
func (d *Diagram) Cell(id string) (*Cell, bool) {
	for i := range d.Cells {
		if d.Cells[i].ID == id {
			return &d.Cells[i], true
		}
	}
	return nil, false
}

// Origin returns the absolute position of the cell's coordinate origin:
// the sum of the positions of its ancestors.
func (d *Diagram) Origin(c *Cell) geom.Point {
	var o geom.Point
	for p, n := c.Parent, 0; p != "" && n < len(d.Cells); n++ {
		parent, ok := d.Cell(p)
		if !ok {
			break
		}
		o = o.Add(geom.Pt(parent.Bounds.X, parent.Bounds.Y))
		p = parent.Parent
	}
	return o
}

// AbsoluteBounds returns the bounds of a vertex in diagram coordinates.
func (d *Diagram) AbsoluteBounds(c *Cell) geom.Rect {
	o := d.Origin(c)
	return c.Bounds.Rect().Translate(o.X, o.Y)
}

// LoadStylesheet builds the stylesheet for d: the file named by the
// Stylesheet field, or the stock stylesheet, plus the inline styles.
func (d *Diagram) LoadStylesheet() (*style.Stylesheet, error) {
	ss := style.NewStylesheet()
	if d.Stylesheet != "" {
		var err error
		if ss, err = style.LoadStylesheetFile(d.Stylesheet); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	}
	for name, s := range d.Styles {
		ss.Put(name, s)
	}
	return ss, nil
}
