package style

import (
	"testing"

	"github.com/gogpu/shape/geom"
	"github.com/stretchr/testify/assert"
)

func TestToBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{0, false},
		{1, true},
		{"0", false},
		{"1", true},
		{"false", false},
		{"FALSE", false},
		{"true", true},
		{"True", true},
		{false, false},
		{true, true},
		{nil, false},
		{"", false},
		{"yes", true},
		{2.5, true},
		{0.0, false},
		{int64(0), false},
	}
	for _, tt := range tests {
		if got := ToBool(tt.in); got != tt.want {
			t.Errorf("ToBool(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		ok   bool
	}{
		{3, 3, true},
		{int64(7), 7, true},
		{2.5, 2.5, true},
		{" 12 ", 12, true},
		{"1e2", 100, true},
		{"abc", 0, false},
		{true, 1, true},
		{nil, 0, false},
		{[]int{1}, 0, false},
	}
	for _, tt := range tests {
		got, ok := ToNumber(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ToNumber(%#v) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStyleAccessors(t *testing.T) {
	s := Style{
		KeyStrokeWidth: "2.5",
		KeyOpacity:     50,
		KeyFillColor:   None,
		KeyStrokeColor: "#000000",
		KeyRounded:     "1",
		KeyDashed:      0,
		KeyDirection:   "north",
		KeySpacing:     "wide",
	}

	assert.Equal(t, 2.5, s.Number(KeyStrokeWidth, 1))
	assert.Equal(t, 50.0, s.Number(KeyOpacity, 100))
	assert.Equal(t, 1.0, s.Number("missing", 1))
	assert.Equal(t, 2.0, s.Number(KeySpacing, 2), "non-numeric falls back to the default")
	assert.Equal(t, 2, s.Int(KeyStrokeWidth, 1))

	assert.Equal(t, "", s.Color(KeyFillColor, "#ffffff"))
	assert.Equal(t, "#000000", s.Color(KeyStrokeColor, ""))
	assert.Equal(t, "#ffffff", s.Color(KeyGradientColor, "#ffffff"))

	assert.True(t, s.Bool(KeyRounded, false))
	assert.False(t, s.Bool(KeyDashed, true))
	assert.True(t, s.Bool(KeyShadow, true))

	assert.Equal(t, geom.DirectionNorth, s.Direction(KeyDirection, geom.DirectionEast))
	assert.Equal(t, geom.DirectionEast, s.Direction(KeyGradientDirection, geom.DirectionEast))
	assert.Equal(t, "50", s.String(KeyOpacity, ""))
}

func TestNilStyle(t *testing.T) {
	var s Style
	assert.Equal(t, 4.0, s.Number(KeyStrokeWidth, 4))
	assert.Equal(t, "x", s.String(KeyShape, "x"))
	assert.False(t, s.Has(KeyShape))
	assert.NotNil(t, s.Clone())
	s = s.Set(KeyShape, "ellipse")
	assert.Equal(t, "ellipse", s.String(KeyShape, ""))
}

func TestCloneIsIndependent(t *testing.T) {
	s := Style{KeyFillColor: "red"}
	c := s.Clone()
	s[KeyFillColor] = "blue"
	assert.Equal(t, "red", c[KeyFillColor])
}

func TestMerge(t *testing.T) {
	s := Style{KeyFillColor: "red", KeyStrokeColor: "black"}
	s.Merge(Style{KeyFillColor: "blue", KeyStrokeColor: None, KeyRounded: 1})
	assert.Equal(t, Style{KeyFillColor: "blue", KeyRounded: 1}, s)
}

func TestFormat(t *testing.T) {
	s := Style{KeyStrokeWidth: 2.0, KeyFillColor: "red", KeyDashed: true}
	assert.Equal(t, "dashed=1;fillColor=red;strokeWidth=2", s.Format())
}

func TestParse(t *testing.T) {
	names, values := Parse("rounded;swimlane; fillColor = #dae8fc ;;strokeColor=none;=x")
	assert.Equal(t, []string{"rounded", "swimlane"}, names)
	assert.Equal(t, Style{KeyFillColor: "#dae8fc", KeyStrokeColor: None}, values)

	names, values = Parse("")
	assert.Empty(t, names)
	assert.Empty(t, values)
}
