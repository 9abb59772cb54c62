package style

import "strings"

// Parse splits a style string of the form "name1;name2;key=value;..." into
// the named styles it references and its inline key/value pairs. Empty
// segments are skipped. Inline values are kept verbatim, including None.
func Parse(s string) (names []string, values Style) {
	values = Style{}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			names = append(names, part)
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.TrimSpace(value)
	}
	return names, values
}
