// Package style holds the flat key/value style maps that drive shape
// painting.
//
// A Style never fails on lookup: every accessor takes a default that is
// returned for missing keys and for values that cannot be coerced. Boolean
// values are read through ToBool so that 1, "1", "true" and true all mean
// the same thing.
//
// Styles are usually produced by a Stylesheet, which merges a default
// vertex or edge style with named styles and inline overrides taken from a
// style string such as "rounded;fillColor=#dae8fc;strokeWidth=2".
// Stylesheets load from YAML or TOML files.
package style
