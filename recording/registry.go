package recording

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownFormat is returned for output formats no backend produces.
var ErrUnknownFormat = errors.New("recording: unknown output format")

// Format is an output format and the backend that writes it.
type Format struct {
	// Name selects the format on the command line, e.g. "svg" or "png".
	Name string

	// Extensions are the file name extensions written in this format,
	// including the dot.
	Extensions []string

	// New returns an empty backend ready for Playback.
	New func() WriterBackend
}

var (
	formatMu   sync.RWMutex
	formats    = make(map[string]Format)
	extensions = make(map[string]string) // extension -> format name
)

// RegisterFormat makes a backend available by format name and file
// extension. Backend packages call it from init:
//
//	func init() {
//	    recording.RegisterFormat(recording.Format{
//	        Name:       "svg",
//	        Extensions: []string{".svg"},
//	        New:        func() recording.WriterBackend { return NewBackend() },
//	    })
//	}
//
// It panics when the name is empty, New is nil, or the name or one of the
// extensions is taken.
func RegisterFormat(f Format) {
	formatMu.Lock()
	defer formatMu.Unlock()

	name := strings.ToLower(f.Name)
	if name == "" {
		panic("recording: RegisterFormat without a name")
	}
	if f.New == nil {
		panic("recording: RegisterFormat " + name + " without a backend")
	}
	if _, dup := formats[name]; dup {
		panic("recording: format " + name + " registered twice")
	}
	for _, ext := range f.Extensions {
		if other, dup := extensions[strings.ToLower(ext)]; dup {
			panic("recording: extension " + ext + " of " + name + " already written by " + other)
		}
	}

	f.Name = name
	f.Extensions = slices.Clone(f.Extensions)
	formats[name] = f
	for _, ext := range f.Extensions {
		extensions[strings.ToLower(ext)] = name
	}
}

// LookupFormat returns the format with the given name, ignoring case.
func LookupFormat(name string) (Format, error) {
	formatMu.RLock()
	f, ok := formats[strings.ToLower(name)]
	formatMu.RUnlock()
	if !ok {
		return Format{}, fmt.Errorf("%w %q (forgotten backend import?)", ErrUnknownFormat, name)
	}
	return f, nil
}

// FormatForFile returns the format written to files named like path.
func FormatForFile(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	formatMu.RLock()
	name, ok := extensions[ext]
	formatMu.RUnlock()
	if !ok {
		return Format{}, fmt.Errorf("%w for %q", ErrUnknownFormat, filepath.Base(path))
	}
	return LookupFormat(name)
}

// Formats returns the names of the registered formats, sorted.
func Formats() []string {
	formatMu.RLock()
	defer formatMu.RUnlock()
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewBackend returns a new backend for the named format.
func NewBackend(name string) (WriterBackend, error) {
	f, err := LookupFormat(name)
	if err != nil {
		return nil, err
	}
	return f.New(), nil
}

// Render plays d back into a new backend for the named format and writes
// the result to w.
func Render(d *Document, format string, w io.Writer) (int64, error) {
	b, err := NewBackend(format)
	if err != nil {
		return 0, err
	}
	if err := d.Playback(b); err != nil {
		return 0, err
	}
	n, err := b.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("recording: write %s: %w", format, err)
	}
	return n, nil
}

// RenderFile renders d into the file at path. An empty format selects the
// format from the file extension.
func RenderFile(d *Document, path, format string) error {
	if format == "" {
		f, err := FormatForFile(path)
		if err != nil {
			return err
		}
		format = f.Name
	}
	// Resolve before creating the file so an unknown format leaves no
	// empty output behind.
	if _, err := LookupFormat(format); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("recording: %w", err)
	}
	if _, err := Render(d, format, out); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
