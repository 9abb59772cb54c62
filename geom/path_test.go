package geom

import "testing"

func TestPathBuild(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.QuadTo(15, 5, 10, 10)
	p.CubicTo(8, 12, 2, 12, 0, 10)
	p.Close()

	if p.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", p.Len())
	}
	verbs := []Verb{VerbMoveTo, VerbLineTo, VerbQuadTo, VerbCubicTo, VerbClose}
	for i, s := range p.Segments() {
		if s.Verb != verbs[i] {
			t.Errorf("segment %d verb = %v, want %v", i, s.Verb, verbs[i])
		}
	}
	if got := p.CurrentPoint(); got != Pt(0, 0) {
		t.Errorf("CurrentPoint() after Close = %v, want (0, 0)", got)
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	if _, ok := p.Bounds(); ok {
		t.Error("empty path Bounds() ok = true")
	}
	p.MoveTo(5, 5)
	p.LineTo(25, 5)
	p.LineTo(25, 15)
	r, ok := p.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false")
	}
	if want := NewRect(5, 5, 20, 10); r != want {
		t.Errorf("Bounds() = %v, want %v", r, want)
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	q := p.Transform(Translate(10, 10).Multiply(Scale(2, 2)))
	segs := q.Segments()
	if got := segs[0].End(); got != Pt(12, 14) {
		t.Errorf("moved start = %v, want (12, 14)", got)
	}
	if got := segs[1].End(); got != Pt(16, 18) {
		t.Errorf("moved end = %v, want (16, 18)", got)
	}
	if got := p.Segments()[0].End(); got != Pt(1, 2) {
		t.Errorf("Transform modified the receiver: %v", got)
	}
}

func TestPathCloneIndependent(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	c := p.Clone()
	c.LineTo(1, 1)
	if p.Len() != 1 || c.Len() != 2 {
		t.Errorf("Len() = %d/%d, want 1/2", p.Len(), c.Len())
	}
	p.Reset()
	if !p.IsEmpty() {
		t.Error("IsEmpty() after Reset = false")
	}
}
