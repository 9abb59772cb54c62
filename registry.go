package shape

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new, unattached shape.
type Factory func() Shape

// Names of the built-in shapes, as used by the shape style key.
const (
	NameRectangle     = "rectangle"
	NameLabel         = "label"
	NameSwimlane      = "swimlane"
	NameTriangle      = "triangle"
	NameActor         = "actor"
	NameCloud         = "cloud"
	NameRhombus       = "rhombus"
	NameEllipse       = "ellipse"
	NameDoubleEllipse = "doubleEllipse"
	NameCylinder      = "cylinder"
	NameLine          = "line"
	NameImage         = "image"
	NameText          = "text"
	NamePolyline      = "polyline"
	NameConnector     = "connector"
	NameArrow         = "arrow"
)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

func init() {
	builtin := map[string]Factory{
		NameRectangle:     func() Shape { return NewRectangle() },
		NameLabel:         func() Shape { return NewLabel() },
		NameSwimlane:      func() Shape { return NewSwimlane() },
		NameTriangle:      func() Shape { return NewTriangle() },
		NameActor:         func() Shape { return NewActor() },
		NameCloud:         func() Shape { return NewCloud() },
		NameRhombus:       func() Shape { return NewRhombus() },
		NameEllipse:       func() Shape { return NewEllipse() },
		NameDoubleEllipse: func() Shape { return NewDoubleEllipse() },
		NameCylinder:      func() Shape { return NewCylinder() },
		NameLine:          func() Shape { return NewLine(false) },
		NameImage:         func() Shape { return NewImage("") },
		NameText:          func() Shape { return NewText("") },
		NamePolyline:      func() Shape { return NewPolyline() },
		NameConnector:     func() Shape { return NewConnector() },
		NameArrow:         func() Shape { return NewArrow() },
	}
	for name, f := range builtin {
		Register(name, f)
	}
}

// Register makes a shape available to New under name, following the
// database/sql driver pattern:
//
//	func init() {
//	    shape.Register("hexagon", func() shape.Shape {
//	        return NewHexagon()
//	    })
//	}
//
// Register panics if factory is nil or name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("shape: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("shape: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a shape from the registry.
// If the shape is not registered, this is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// New creates a shape by name.
func New(name string) (Shape, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("shape: unknown shape %q", name)
	}
	return factory(), nil
}

// Names returns the registered shape names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a shape named name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
