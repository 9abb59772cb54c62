package recording

import (
	"fmt"
	"sync"

	"github.com/gogpu/shape/canvas"
	"github.com/gogpu/shape/geom"
)

// node is one entry of a Document's node tree.
type node struct {
	parent   canvas.NodeRef
	children []canvas.NodeRef
	commands []Command
	visible  bool
	offset   geom.Point
}

// Document is a retained drawing: a tree of nodes, each holding the
// commands recorded into it, plus the gradient definitions the commands
// refer to. Document implements canvas.Surface and canvas.BoundsQuerier.
//
// Document is safe for concurrent use; canvases obtained from NewCanvas
// are not.
type Document struct {
	mu        sync.Mutex
	width     int
	height    int
	nodes     map[canvas.NodeRef]*node
	next      canvas.NodeRef
	root      canvas.NodeRef
	gradients *canvas.GradientTable
	opts      documentOptions
}

var (
	_ canvas.Surface       = (*Document)(nil)
	_ canvas.BoundsQuerier = (*Document)(nil)
)

// NewDocument creates an empty document of the given page size.
func NewDocument(width, height int, opts ...DocumentOption) *Document {
	o := defaultDocumentOptions()
	for _, opt := range opts {
		opt(&o)
	}
	d := &Document{
		width:     width,
		height:    height,
		nodes:     make(map[canvas.NodeRef]*node),
		gradients: canvas.NewGradientTable(),
		opts:      o,
	}
	d.root = d.newNode(canvas.NoNode)
	return d
}

func (d *Document) newNode(parent canvas.NodeRef) canvas.NodeRef {
	d.next++
	ref := d.next
	d.nodes[ref] = &node{parent: parent, visible: true}
	if p, ok := d.nodes[parent]; ok {
		p.children = append(p.children, ref)
	}
	return ref
}

// Size returns the page size.
func (d *Document) Size() (width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.width, d.height
}

// SetSize changes the page size.
func (d *Document) SetSize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.width, d.height = width, height
}

// Root implements canvas.Surface.
func (d *Document) Root() canvas.NodeRef { return d.root }

// CreateNode implements canvas.Surface.
func (d *Document) CreateNode(parent canvas.NodeRef) (canvas.NodeRef, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.nodes[parent]; !ok {
		return canvas.NoNode, fmt.Errorf("recording: create node under %d: %w", parent, canvas.ErrNodeNotFound)
	}
	return d.newNode(parent), nil
}

// RemoveNode implements canvas.Surface. Descendants are removed too.
// Removing the root or an unknown node does nothing.
func (d *Document) RemoveNode(n canvas.NodeRef) {
	d.mu.Lock()
	defer d.mu.Unlock()
	nd, ok := d.nodes[n]
	if !ok || n == d.root {
		return
	}
	if p, ok := d.nodes[nd.parent]; ok {
		for i, c := range p.children {
			if c == n {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	d.removeTree(n)
}

func (d *Document) removeTree(n canvas.NodeRef) {
	nd := d.nodes[n]
	for _, c := range nd.children {
		d.removeTree(c)
	}
	delete(d.nodes, n)
}

// ClearNode implements canvas.Surface.
func (d *Document) ClearNode(n canvas.NodeRef) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if nd, ok := d.nodes[n]; ok {
		nd.commands = nil
	}
}

// SetVisible implements canvas.Surface.
func (d *Document) SetVisible(n canvas.NodeRef, visible bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if nd, ok := d.nodes[n]; ok {
		nd.visible = visible
	}
}

// SetOffset implements canvas.Surface.
func (d *Document) SetOffset(n canvas.NodeRef, dx, dy float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if nd, ok := d.nodes[n]; ok {
		nd.offset = geom.Pt(dx, dy)
	}
}

// NewCanvas implements canvas.Surface. Commands painted on the returned
// canvas are appended to n.
func (d *Document) NewCanvas(n canvas.NodeRef) canvas.Canvas {
	return newCanvas(d, n)
}

// Gradients implements canvas.Surface.
func (d *Document) Gradients() *canvas.GradientTable { return d.gradients }

// NodeBounds implements canvas.BoundsQuerier. The bounds cover the
// commands of n and its descendants, ignoring stroke widths and offsets.
// A node that drew nothing has an empty rectangle.
func (d *Document) NodeBounds(n canvas.NodeRef) (geom.Rect, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	nd, ok := d.nodes[n]
	if !ok {
		return geom.Rect{}, fmt.Errorf("recording: bounds of node %d: %w", n, canvas.ErrNodeNotFound)
	}
	if !nd.visible {
		return geom.Rect{}, fmt.Errorf("recording: bounds of node %d: %w", n, canvas.ErrNodeHidden)
	}
	r, _ := d.treeBounds(n, geom.Pt(0, 0))
	return r, nil
}

func (d *Document) treeBounds(n canvas.NodeRef, offset geom.Point) (geom.Rect, bool) {
	nd := d.nodes[n]
	var out geom.Rect
	found := false
	add := func(r geom.Rect) {
		if !found {
			out, found = r, true
			return
		}
		out = out.Add(r)
	}
	for _, c := range nd.commands {
		if r, ok := c.Bounds(); ok {
			add(r.Translate(offset.X, offset.Y))
		}
	}
	for _, c := range nd.children {
		child := d.nodes[c]
		if !child.visible {
			continue
		}
		if r, ok := d.treeBounds(c, offset.Add(child.offset)); ok {
			add(r)
		}
	}
	return out, found
}

// Commands returns a copy of the commands recorded into n.
func (d *Document) Commands(n canvas.NodeRef) []Command {
	d.mu.Lock()
	defer d.mu.Unlock()
	if nd, ok := d.nodes[n]; ok {
		return append([]Command(nil), nd.commands...)
	}
	return nil
}

// Visible reports whether n exists and is visible.
func (d *Document) Visible(n canvas.NodeRef) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	nd, ok := d.nodes[n]
	return ok && nd.visible
}

// Offset returns the screen offset of n.
func (d *Document) Offset(n canvas.NodeRef) geom.Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	if nd, ok := d.nodes[n]; ok {
		return nd.offset
	}
	return geom.Point{}
}

// Children returns the children of n in creation order.
func (d *Document) Children(n canvas.NodeRef) []canvas.NodeRef {
	d.mu.Lock()
	defer d.mu.Unlock()
	if nd, ok := d.nodes[n]; ok {
		return append([]canvas.NodeRef(nil), nd.children...)
	}
	return nil
}

// Len returns the number of nodes, the root included.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.nodes)
}

func (d *Document) record(n canvas.NodeRef, cmd Command) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if nd, ok := d.nodes[n]; ok {
		nd.commands = append(nd.commands, cmd)
	}
}

// Playback replays the document to a backend. Gradients are defined
// first; then every visible node is visited depth-first, parents before
// children. Hidden nodes are skipped with their subtrees.
func (d *Document) Playback(b Backend) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := b.Begin(d.width, d.height, d.opts.background); err != nil {
		return fmt.Errorf("recording: begin playback: %w", err)
	}
	for _, key := range d.gradients.Keys() {
		def, _ := d.gradients.Lookup(key)
		b.DefineGradient(key, def)
	}
	d.playNode(b, d.root)
	if err := b.End(); err != nil {
		return fmt.Errorf("recording: end playback: %w", err)
	}
	return nil
}

func (d *Document) playNode(b Backend, n canvas.NodeRef) {
	nd := d.nodes[n]
	if !nd.visible {
		return
	}
	b.BeginNode(nd.offset)
	for _, cmd := range nd.commands {
		d.playCommand(b, cmd)
	}
	for _, c := range nd.children {
		d.playNode(b, c)
	}
	b.EndNode()
}

func (d *Document) playCommand(b Backend, cmd Command) {
	switch c := cmd.(type) {
	case FillPathCommand:
		if c.Paint.IsGradient() {
			if _, ok := d.gradients.Lookup(c.Paint.Gradient); !ok {
				Logger().Warn("recording: fill refers to unknown gradient", "key", string(c.Paint.Gradient))
				return
			}
		}
		b.FillPath(c.Path, c.Paint, c.Rule)
	case StrokePathCommand:
		b.StrokePath(c.Path, c.Paint, c.Stroke)
	case DrawImageCommand:
		b.DrawImage(c)
	case DrawTextCommand:
		b.DrawText(c)
	}
}
