// Package config decodes the YAML and TOML files used for stylesheets and
// diagrams.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format int

// Supported formats.
const (
	FormatUnknown Format = iota
	FormatYAML
	FormatTOML
)

// String returns the conventional name of f.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	}
	return "unknown"
}

// ParseFormat maps "yaml", "yml" and "toml" to a Format.
func ParseFormat(name string) (Format, error) {
	return FormatFor("." + name)
}

// FormatFor picks the format from the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return FormatUnknown, fmt.Errorf("config: unsupported file extension %q", filepath.Ext(path))
}

// Decode reads all of r and unmarshals it into v.
func Decode(r io.Reader, f Format, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("config: read: %w", err)
	}
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("config: parse yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("config: parse toml: %w", err)
		}
	default:
		return fmt.Errorf("config: unsupported format %v", f)
	}
	return nil
}

// Load decodes the file at path, choosing the format by extension.
func Load(path string, v any) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer file.Close()
	if err := Decode(file, f, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
