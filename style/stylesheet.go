package style

import (
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/gogpu/shape/internal/config"
)

// Stylesheet resolves style strings against a default vertex style, a
// default edge style and a set of named styles.
type Stylesheet struct {
	DefaultVertex Style
	DefaultEdge   Style
	styles        map[string]Style
}

// NewStylesheet returns a stylesheet holding the stock default styles.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{
		DefaultVertex: Style{
			KeyShape:         "rectangle",
			KeyVerticalAlign: "middle",
			KeyAlign:         "center",
			KeyFillColor:     "#C3D9FF",
			KeyStrokeColor:   "#6482B9",
			KeyFontColor:     "#774400",
		},
		DefaultEdge: Style{
			KeyShape:         "connector",
			KeyEndArrow:      ArrowClassic,
			KeyVerticalAlign: "middle",
			KeyAlign:         "center",
			KeyStrokeColor:   "#6482B9",
			KeyFontColor:     "#446299",
		},
		styles: make(map[string]Style),
	}
}

// Put registers a named style. The stylesheet keeps its own copy.
func (ss *Stylesheet) Put(name string, s Style) {
	ss.styles[name] = s.Clone()
}

// Get returns the named style, or nil.
func (ss *Stylesheet) Get(name string) Style {
	return ss.styles[name]
}

// Names returns the registered style names.
func (ss *Stylesheet) Names() []string {
	names := make([]string, 0, len(ss.styles))
	for name := range ss.styles {
		names = append(names, name)
	}
	return names
}

// Resolve builds the effective style for a style string. Resolution
// starts from a copy of the default vertex or edge style, unless the
// string begins with ';'. Segments are applied in order: a bare name
// copies the keys of that named style, "key=value" sets a key, and
// "key=none" removes it. Unknown names are ignored.
func (ss *Stylesheet) Resolve(s string, edge bool) Style {
	var out Style
	switch {
	case strings.HasPrefix(s, ";"):
		out = Style{}
	case edge:
		out = ss.DefaultEdge.Clone()
	default:
		out = ss.DefaultVertex.Clone()
	}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			if named, found := ss.styles[part]; found {
				maps.Copy(out, named)
			}
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if value == None {
			delete(out, key)
		} else {
			out[key] = value
		}
	}
	return out
}

type stylesheetFile struct {
	DefaultVertex Style            `yaml:"defaultVertex" toml:"defaultVertex"`
	DefaultEdge   Style            `yaml:"defaultEdge" toml:"defaultEdge"`
	Styles        map[string]Style `yaml:"styles" toml:"styles"`
}

// LoadStylesheet decodes a stylesheet in the named format ("yaml" or
// "toml"). Default styles in the input are merged over the stock
// defaults; a None value removes a stock key.
func LoadStylesheet(r io.Reader, format string) (*Stylesheet, error) {
	f, err := config.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	var file stylesheetFile
	if err := config.Decode(r, f, &file); err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	return fromFile(file), nil
}

// LoadStylesheetFile reads a stylesheet, choosing the format by extension.
func LoadStylesheetFile(path string) (*Stylesheet, error) {
	var file stylesheetFile
	if err := config.Load(path, &file); err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	return fromFile(file), nil
}

func fromFile(file stylesheetFile) *Stylesheet {
	ss := NewStylesheet()
	ss.DefaultVertex.Merge(file.DefaultVertex)
	ss.DefaultEdge.Merge(file.DefaultEdge)
	for name, s := range file.Styles {
		ss.Put(name, s)
	}
	return ss
}
