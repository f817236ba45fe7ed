package schema_test

import (
	"bytes"
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/strata/pkg/core"
	strataerrors "github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/schema"
	stratatest "github.com/go-drift/strata/pkg/testing"
	"github.com/go-drift/strata/pkg/widgets"
)

const sampleJSON = `{
  // login form
  "version": "1.0.0",
  "root": {
    "type": "VStack",
    "id": "form",
    "props": {"spacing": 8, "padding": 12, "alignment": "center", "background": "#202030"},
    "children": [
      {"type_name": "Label", "props": {"text": "Sign in", "font_size": 18}},
      {"type": "Button", "id": "ok", "props": {"label": "OK", "variant": "primary"}, "events": ["on_click"]},
    ]
  }
}`

const sampleYAML = `
version: 1.0.0
root:
  type: VStack
  id: form
  props:
    spacing: 8
    padding: 12
    alignment: center
    background: "#202030"
  children:
    - type_name: Label
      props:
        text: Sign in
        font_size: 18
    - type: Button
      id: ok
      props:
        label: OK
        variant: primary
      events: [on_click]
`

func nopBuilder() *schema.Builder {
	return schema.NewBuilder(nil, zerolog.Nop())
}

func collectErrors(t *testing.T) *strataerrors.Collector {
	t.Helper()
	c := &strataerrors.Collector{}
	prev := strataerrors.SetHandler(c)
	t.Cleanup(func() { strataerrors.SetHandler(prev) })
	return c
}

func TestParse_JSONWithCommentsAndAlias(t *testing.T) {
	doc, err := schema.Parse([]byte(sampleJSON), schema.FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", doc.Version)
	require.Len(t, doc.Root.Children, 2)
	assert.Equal(t, "Label", doc.Root.Children[0].Type)
	assert.Equal(t, []string{"on_click"}, doc.Root.Children[1].Events)
	assert.Equal(t, 3, doc.Root.Count())
}

func TestParse_YAMLMatchesJSON(t *testing.T) {
	fromJSON, err := schema.Parse([]byte(sampleJSON), schema.FormatJSON)
	require.NoError(t, err)
	fromYAML, err := schema.Parse([]byte(sampleYAML), schema.FormatYAML)
	require.NoError(t, err)

	// YAML decodes integers as int, JSON as float64; compare the built trees.
	a, _ := nopBuilder().Build(fromJSON.Root)
	b, _ := nopBuilder().Build(fromYAML.Root)
	assert.Equal(t, a.(*widgets.Stack).Config(), b.(*widgets.Stack).Config())
	assert.Equal(t, fromJSON.Root.Children[1].Events, fromYAML.Root.Children[1].Events)
}

func TestParse_BareNode(t *testing.T) {
	doc, err := schema.Parse([]byte(`{"type": "Label", "props": {"text": "hi"}}`), schema.FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, doc.Version)
	assert.Equal(t, "Label", doc.Root.Type)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format schema.Format
		want   error
	}{
		{"empty", `{}`, schema.FormatJSON, schema.ErrNoRoot},
		{"major", `{"version": "2.0.0", "root": {"type": "Label"}}`, schema.FormatJSON, schema.ErrUnsupportedVersion},
		{"invalid", "version: latest\nroot: {type: Label}", schema.FormatYAML, schema.ErrInvalidVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.Parse([]byte(tt.input), tt.format)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, tt.want), err.Error())
			var serr *strataerrors.Error
			require.True(t, stderrors.As(err, &serr))
			assert.Equal(t, strataerrors.KindSchema, serr.Kind)
		})
	}

	_, err := schema.Parse([]byte(`{"root": [`), schema.FormatJSON)
	assert.Error(t, err)
}

func TestCheckVersion(t *testing.T) {
	assert.NoError(t, schema.CheckVersion(""))
	assert.NoError(t, schema.CheckVersion("1.4.2"))
	assert.NoError(t, schema.CheckVersion("v1.0"))
	assert.ErrorIs(t, schema.CheckVersion("0.9.0"), schema.ErrUnsupportedVersion)
	assert.ErrorIs(t, schema.CheckVersion("1.x"), schema.ErrInvalidVersion)
}

func TestCBORRoundTrip(t *testing.T) {
	doc, err := schema.Parse([]byte(sampleJSON), schema.FormatJSON)
	require.NoError(t, err)

	data, err := schema.Marshal(doc, schema.FormatCBOR)
	require.NoError(t, err)
	back, err := schema.Parse(data, schema.FormatCBOR)
	require.NoError(t, err)

	assert.Equal(t, doc, back)

	again, err := schema.Marshal(back, schema.FormatCBOR)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, again), "deterministic encoding")
}

func TestSaveAndLoad(t *testing.T) {
	doc := schema.NewDocument(schema.NewNode("HStack").WithChildren(
		schema.NewNode("Box").WithID("a").WithProp("width", 20.0),
		schema.NewNode("Label").WithProp("text", "x"),
	))
	dir := t.TempDir()

	for _, name := range []string{"ui.json", "ui.yaml", "ui.cbor"} {
		path := filepath.Join(dir, name)
		require.NoError(t, schema.Save(doc, path), name)
		loaded, err := schema.Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, schema.CurrentVersion, loaded.Version)
		assert.Equal(t, "a", loaded.Root.Children[0].ID, name)
	}

	_, err := schema.Load(filepath.Join(dir, "ui.xml"))
	assert.ErrorContains(t, err, "unknown schema format")
}

func TestBuild_UnknownTypeUsesPlaceholder(t *testing.T) {
	collector := collectErrors(t)
	var logs bytes.Buffer
	b := schema.NewBuilder(nil, zerolog.New(&logs))

	root := schema.NewNode("VStack").WithChildren(
		schema.NewNode("Slider").WithID("volume").WithChildren(schema.NewNode("Label")),
		schema.NewNode("Label").WithProp("text", "after"),
	)
	c, diags := b.Build(root)

	require.Len(t, diags, 1)
	assert.Equal(t, "root.children[0] (Slider#volume): unknown component type", diags[0].String())
	stack := c.(*widgets.Stack)
	require.Equal(t, 2, stack.ChildCount())
	placeholder := stack.Children()[0].(*widgets.Label)
	assert.Equal(t, "[Unknown: Slider]", placeholder.Text())
	assert.Equal(t, "volume", placeholder.ID())
	assert.Contains(t, logs.String(), `"type":"Slider"`)
	require.Len(t, collector.Errors, 1)
	assert.Equal(t, strataerrors.KindSchema, collector.Errors[0].Kind)

	h := stratatest.NewHarnessWithT(t, c)
	h.Pump()
	assert.Equal(t, []string{"[Unknown: Slider]", "after"}, h.Recorder().Texts())
}

func TestBuild_ContainerProps(t *testing.T) {
	c, diags := nopBuilder().Build(schema.NewNode("HStack").
		WithID("row").
		WithProp("spacing", 4).
		WithProp("padding", uint64(6)).
		WithProp("alignment", "stretch").
		WithProp("background", "#FF0000"))
	require.Empty(t, diags)

	cfg := c.(*widgets.Stack).Config()
	assert.Equal(t, widgets.StackConfig{
		ID: "row", Gap: 4, Padding: 6, Alignment: layout.AlignStretch, Background: graphics.ColorRed,
	}, cfg)

	z, diags := nopBuilder().Build(schema.NewNode("ZStack").WithProp("padding", 3))
	require.Empty(t, diags)
	assert.Equal(t, 3.0, z.(*widgets.ZStack).Config().Padding)
}

func TestBuild_SplitViewProps(t *testing.T) {
	node := schema.NewNode("SplitView").
		WithProp("direction", "vertical").
		WithProp("ratio", 0.6).
		WithProp("min_ratio", 0.2).
		WithProp("max_ratio", 0.7).
		WithProp("gutter", 10).
		WithChildren(schema.NewNode("Label"), schema.NewNode("Label"))
	c, diags := nopBuilder().Build(node)
	require.Empty(t, diags)

	split := c.(*widgets.SplitView)
	min, max := split.RatioBounds()
	assert.Equal(t, 0.6, split.Ratio())
	assert.Equal(t, 0.2, min)
	assert.Equal(t, 0.7, max)

	split.Layout(graphics.Rect{Width: 100, Height: 200})
	assert.Equal(t, graphics.Rect{X: 0, Y: 115, Width: 100, Height: 10}, split.GutterRect())
}

func TestBuild_SplitViewPanesPadded(t *testing.T) {
	c, diags := nopBuilder().Build(schema.NewNode("SplitView").WithChildren(schema.NewNode("Label")))

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "takes 2 children, got 1")
	assert.Equal(t, 2, c.ChildCount())
}

func TestBuild_InvalidPropsAreDiagnosed(t *testing.T) {
	node := schema.NewNode("VStack").
		WithProp("spacing", "wide").
		WithProp("alignment", "sideways").
		WithChildren(
			schema.NewNode("Button").WithProp("variant", "fancy"),
			schema.NewNode("Box").WithProp("color", "#12").WithProp("focusable", "maybe"),
			schema.NewNode("Label").WithChildren(schema.NewNode("Label")),
			schema.NewNode("SplitView").WithProp("direction", "diagonal").WithChildren(schema.NewNode("Box"), schema.NewNode("Box")),
		)
	c, diags := nopBuilder().Build(node)

	require.NotNil(t, c)
	var messages []string
	for _, d := range diags {
		messages = append(messages, d.String())
	}
	assert.Len(t, diags, 7, messages)
	assert.Contains(t, messages, `root (VStack): property "spacing": expected a number, got string`)
	assert.Contains(t, messages, `root.children[2] (Label): 1 children ignored, Label takes none`)
	assert.Equal(t, layout.AlignStart, c.(*widgets.Stack).Config().Alignment)
}

func TestBuild_LeafDefaults(t *testing.T) {
	c, _ := nopBuilder().Build(schema.NewNode("VStack").WithChildren(
		schema.NewNode("Label"),
		schema.NewNode("Button").WithID("b"),
		schema.NewNode("Image").WithProp("src", "logo.png").WithProp("width", 40),
	))
	children := c.(*widgets.Stack).Children()

	assert.Equal(t, "Label", children[0].(*widgets.Label).Text())
	assert.True(t, children[1].IsFocusable())
	img := children[2].(*widgets.Image)
	assert.Equal(t, graphics.Size{Width: 40, Height: 100}, img.Layout(graphics.Rect{}))
}

func TestBuild_EventHandlers(t *testing.T) {
	var calls []string
	b := nopBuilder().
		Handle("ok.on_click", func(*core.Context) { calls = append(calls, "ok") }).
		Handle("on_click", func(*core.Context) { calls = append(calls, "any") })

	doc, err := schema.Parse([]byte(sampleJSON), schema.FormatJSON)
	require.NoError(t, err)
	doc.Root.WithChildren(
		schema.NewNode("Box").WithID("tile").WithProp("width", 30).WithProp("height", 30).WithEvent("on_click"),
		schema.NewNode("Button").WithID("mute").WithProp("label", "Mute"),
	)
	root, diags, err := b.BuildDocument(doc)
	require.NoError(t, err)
	require.Empty(t, diags)

	h := stratatest.NewHarnessWithT(t, root)
	h.Pump()
	require.NoError(t, h.Tap("ok"))
	require.NoError(t, h.Tap("tile"))
	require.NoError(t, h.Tap("mute"))

	assert.Equal(t, []string{"ok", "any"}, calls)
}

func TestBuildDocument_RejectsBadDocuments(t *testing.T) {
	_, _, err := nopBuilder().BuildDocument(&schema.Document{Version: "3.0.0", Root: schema.NewNode("Label")})
	assert.ErrorIs(t, err, schema.ErrUnsupportedVersion)

	_, _, err = nopBuilder().BuildDocument(&schema.Document{})
	assert.ErrorIs(t, err, schema.ErrNoRoot)
}

func TestValidate(t *testing.T) {
	doc := schema.NewDocument(schema.NewNode("VStack").WithChildren(
		schema.NewNode("Label").WithID("a"),
		schema.NewNode("").WithID("b"),
		schema.NewNode("Chart"),
		schema.NewNode("Box").WithID("a"),
	))

	diags, err := doc.Validate(nil, false)
	require.NoError(t, err)
	require.Len(t, diags, 3)
	assert.Equal(t, "root.children[1] (#b): missing type", diags[0].String())
	assert.Equal(t, "root.children[2] (Chart): unknown component type", diags[1].String())
	assert.Equal(t, "root.children[3] (Box#a): duplicate id, first used at root.children[0]", diags[2].String())

	_, err = doc.Validate(nil, true)
	assert.ErrorContains(t, err, "3 problem(s)")

	clean := schema.NewDocument(schema.NewNode("Label"))
	diags, err = clean.Validate(schema.DefaultRegistry(), true)
	assert.NoError(t, err)
	assert.Empty(t, diags)
}

func TestRegistry_Custom(t *testing.T) {
	reg := schema.NewRegistry()
	reg.Register("Spacer", func(in *schema.Input) core.Component {
		return widgets.NewBox(widgets.BoxConfig{ID: in.Node.ID, Height: in.FloatOr(8, "size")})
	})
	assert.Equal(t, []string{"Spacer"}, reg.Names())
	assert.False(t, reg.Has("VStack"))

	c, diags := schema.NewBuilder(reg, zerolog.Nop()).Build(schema.NewNode("Spacer").WithID("gap"))
	require.Empty(t, diags)
	assert.Equal(t, "gap", c.ID())

	assert.Equal(t,
		[]string{"Box", "Button", "HStack", "Image", "Label", "SplitView", "VStack", "ZStack"},
		schema.DefaultRegistry().Names())
}
