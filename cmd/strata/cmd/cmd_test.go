package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	strataerrors "github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/schema"
)

const helloDoc = `{
  "version": "1.0.0",
  "root": {
    "type": "VStack",
    "id": "root",
    "props": {"padding": 10},
    "children": [
      {"type": "Label", "id": "greeting", "props": {"text": "Hello"}},
      {"type": "Box", "props": {"width": 40, "height": 20, "color": "#FF0000"}}
    ]
  }
}`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { strataerrors.SetHandler(nil) })

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "strata version "+Version)
	assert.Contains(t, out, "schema "+schema.CurrentVersion)
}

func TestSubcommandsRegistered(t *testing.T) {
	var names []string
	for _, c := range NewRootCmd().Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"run", "snapshot", "convert", "validate", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestSnapshot_Ops(t *testing.T) {
	doc := writeFile(t, "hello.json", helloDoc)

	out, err := execute(t, "snapshot", doc, "--ops", "--width", "200", "--height", "100", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "clear "), lines[0])
	assert.Contains(t, out, `text "Hello" @(10,10)`)
	assert.Contains(t, out, "#FFFF0000")
}

func TestSnapshot_PNGUsesConfigAndFlags(t *testing.T) {
	doc := writeFile(t, "hello.json", helloDoc)
	cfg := writeFile(t, "app.yaml", "title: Demo\nwidth: 300\nheight: 400\n")
	output := filepath.Join(t.TempDir(), "out.png")

	_, err := execute(t, "snapshot", doc, "-c", cfg, "--height", "50", "-o", output, "--log-level", "error")
	require.NoError(t, err)

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())
}

func TestSnapshot_InvalidSizeFails(t *testing.T) {
	doc := writeFile(t, "hello.json", helloDoc)

	_, err := execute(t, "snapshot", doc, "--ops", "--width", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
}

func TestSnapshot_UnknownTypeStillRenders(t *testing.T) {
	doc := writeFile(t, "odd.yaml", "type: VStack\nchildren:\n  - type: Slider\n    id: volume\n")

	out, err := execute(t, "snapshot", doc, "--ops", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, `"[Unknown: Slider]"`)
}

func TestConvert_RoundTrip(t *testing.T) {
	src := writeFile(t, "hello.json", helloDoc)
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "hello.yaml")
	cborPath := filepath.Join(dir, "hello.cbor")

	_, err := execute(t, "convert", src, yamlPath, "--log-level", "error")
	require.NoError(t, err)
	_, err = execute(t, "convert", yamlPath, cborPath, "--log-level", "error")
	require.NoError(t, err)

	original, err := schema.Load(src)
	require.NoError(t, err)
	converted, err := schema.Load(cborPath)
	require.NoError(t, err)
	assert.Equal(t, original.Version, converted.Version)
	assert.Equal(t, original.Root.Count(), converted.Root.Count())
	assert.Equal(t, "greeting", converted.Root.Children[0].ID)
}

func TestConvert_ToStdout(t *testing.T) {
	src := writeFile(t, "hello.json", helloDoc)

	out, err := execute(t, "convert", src, "-", "--to", "yaml", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "type: VStack")
	assert.Contains(t, out, "version: 1.0.0")
}

func TestConvert_UnknownExtension(t *testing.T) {
	src := writeFile(t, "hello.json", helloDoc)

	_, err := execute(t, "convert", src, filepath.Join(t.TempDir(), "hello.xml"), "--log-level", "error")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	good := writeFile(t, "good.json", helloDoc)
	bad := writeFile(t, "bad.yaml", "type: VStack\nchildren:\n  - type: Slider\n  - type: Label\n    id: a\n  - type: Label\n    id: a\n")

	out, err := execute(t, "validate", good, bad)
	require.NoError(t, err)
	assert.Contains(t, out, good+": ok (3 nodes)")
	assert.Contains(t, out, "unknown component type")
	assert.Contains(t, out, "duplicate id")

	_, err = execute(t, "validate", "--strict", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
}

func TestTraceLevelLogsPanicStacks(t *testing.T) {
	good := writeFile(t, "good.json", helloDoc)

	_, err := execute(t, "validate", good, "--log-level", "trace")
	require.NoError(t, err)
	handler, ok := strataerrors.CurrentHandler().(*strataerrors.LogHandler)
	require.True(t, ok)
	assert.True(t, handler.Verbose)

	_, err = execute(t, "validate", good)
	require.NoError(t, err)
	handler, ok = strataerrors.CurrentHandler().(*strataerrors.LogHandler)
	require.True(t, ok)
	assert.False(t, handler.Verbose)
}

func TestValidate_ParseErrorFails(t *testing.T) {
	broken := writeFile(t, "broken.json", `{"root": `)

	out, err := execute(t, "validate", broken)
	require.Error(t, err)
	assert.Contains(t, out, broken+":")
}

func TestLoadTheme(t *testing.T) {
	dark, err := loadTheme("")
	require.NoError(t, err)
	assert.Equal(t, "dark", strings.ToLower(dark.Brightness.String()))

	light, err := loadTheme("Light")
	require.NoError(t, err)
	assert.Equal(t, "light", strings.ToLower(light.Brightness.String()))

	_, err = loadTheme(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestExampleDocumentIsValid(t *testing.T) {
	out, err := execute(t, "validate", "--strict", filepath.Join("..", "..", "..", "examples", "workbench.jsonc"))
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
}
