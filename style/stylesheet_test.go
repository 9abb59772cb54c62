package style

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	ss := NewStylesheet()
	ss.Put("blue", Style{KeyFillColor: "#dae8fc", KeyStrokeColor: "#6c8ebf"})
	ss.Put("thick", Style{KeyStrokeWidth: "3"})

	s := ss.Resolve("blue;thick;strokeColor=#ff0000", false)
	assert.Equal(t, "rectangle", s.String(KeyShape, ""))
	assert.Equal(t, "#dae8fc", s.String(KeyFillColor, ""))
	assert.Equal(t, "#ff0000", s.String(KeyStrokeColor, ""))
	assert.Equal(t, 3.0, s.Number(KeyStrokeWidth, 1))

	s = ss.Resolve("fontColor=none", true)
	assert.Equal(t, "connector", s.String(KeyShape, ""))
	assert.False(t, s.Has(KeyFontColor))

	s = ss.Resolve(";blue", false)
	assert.False(t, s.Has(KeyShape), "a leading ';' skips the default style")
	assert.Equal(t, "#dae8fc", s.String(KeyFillColor, ""))

	s = ss.Resolve("unknown", false)
	assert.Equal(t, ss.DefaultVertex, s)
}

func TestResolveDoesNotAliasDefaults(t *testing.T) {
	ss := NewStylesheet()
	s := ss.Resolve("", false)
	s[KeyFillColor] = "red"
	assert.Equal(t, "#C3D9FF", ss.DefaultVertex[KeyFillColor])
}

const yamlSheet = `
defaultVertex:
  fillColor: "#ffffff"
  fontColor: none
styles:
  rounded:
    rounded: 1
    arcSize: 10
`

const tomlSheet = `
[defaultEdge]
endArrow = "block"

[styles.dashed]
dashed = true
dashPattern = "4 2"
`

func TestLoadStylesheetYAML(t *testing.T) {
	ss, err := LoadStylesheet(strings.NewReader(yamlSheet), "yaml")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", ss.DefaultVertex.String(KeyFillColor, ""))
	assert.False(t, ss.DefaultVertex.Has(KeyFontColor))
	assert.Equal(t, "rectangle", ss.DefaultVertex.String(KeyShape, ""))

	s := ss.Resolve("rounded", false)
	assert.True(t, s.Bool(KeyRounded, false))
	assert.Equal(t, 10.0, s.Number(KeyArcSize, 0))
}

func TestLoadStylesheetTOML(t *testing.T) {
	ss, err := LoadStylesheet(strings.NewReader(tomlSheet), "toml")
	require.NoError(t, err)
	assert.Equal(t, ArrowBlock, ss.DefaultEdge.String(KeyEndArrow, ""))

	s := ss.Resolve("dashed", true)
	assert.True(t, s.Bool(KeyDashed, false))
	assert.Equal(t, "4 2", s.String(KeyDashPattern, ""))
}

func TestLoadStylesheetErrors(t *testing.T) {
	_, err := LoadStylesheet(strings.NewReader("a: b"), "ini")
	assert.Error(t, err)
	_, err = LoadStylesheet(strings.NewReader("styles: [1, 2"), "yaml")
	assert.Error(t, err)
}

func TestLoadStylesheetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlSheet), 0o600))
	ss, err := LoadStylesheetFile(path)
	require.NoError(t, err)
	assert.NotNil(t, ss.Get("dashed"))
}
