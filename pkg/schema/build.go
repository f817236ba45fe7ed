package schema

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/errors"
	"github.com/go-drift/strata/pkg/graphics"
	"github.com/go-drift/strata/pkg/widgets"
)

// Handlers binds event names listed on nodes to callbacks. A node with id
// "save" listing "on_click" uses the handler "save.on_click" if present,
// otherwise "on_click".
type Handlers map[string]func(ctx *core.Context)

func (h Handlers) lookup(id, event string) func(ctx *core.Context) {
	if id != "" {
		if fn, ok := h[id+"."+event]; ok {
			return fn
		}
	}
	return h[event]
}

// Builder turns nodes into components.
type Builder struct {
	registry *Registry
	logger   zerolog.Logger
	handlers Handlers
}

// NewBuilder returns a Builder over reg. A nil reg selects DefaultRegistry.
func NewBuilder(reg *Registry, logger zerolog.Logger) *Builder {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Builder{registry: reg, logger: logger, handlers: Handlers{}}
}

// Handle binds an event handler name.
func (b *Builder) Handle(name string, fn func(ctx *core.Context)) *Builder {
	b.handlers[name] = fn
	return b
}

// Registry returns the registry used for type lookup.
func (b *Builder) Registry() *Registry { return b.registry }

// Build creates the component tree for n. It never fails: unknown types and
// invalid properties are reported as diagnostics.
func (b *Builder) Build(n *Node) (core.Component, []Diagnostic) {
	var diags []Diagnostic
	c := b.build(n, "root", &diags)
	return c, diags
}

// BuildDocument checks the document version and builds its root.
func (b *Builder) BuildDocument(doc *Document) (core.Component, []Diagnostic, error) {
	if err := CheckVersion(doc.Version); err != nil {
		return nil, nil, err
	}
	if doc.Root == nil {
		return nil, nil, ErrNoRoot
	}
	c, diags := b.Build(doc.Root)
	return c, diags, nil
}

func (b *Builder) build(n *Node, path string, diags *[]Diagnostic) core.Component {
	if n == nil {
		*diags = append(*diags, Diagnostic{Path: path, Message: "null node"})
		return widgets.NewPlaceholder("null")
	}

	ctor, ok := b.registry.Lookup(n.Type)
	if !ok {
		*diags = append(*diags, Diagnostic{Path: path, Type: n.Type, ID: n.ID, Message: ErrUnknownType.Error()})
		b.logger.Warn().
			Str("type", n.Type).
			Str("id", n.ID).
			Str("path", path).
			Msg("unknown component type, using placeholder")
		errors.Report(&errors.Error{
			Op:      "schema.Build",
			Kind:    errors.KindSchema,
			Subject: n.Type,
			Err:     ErrUnknownType,
		})
		placeholder := widgets.NewPlaceholder(n.Type)
		placeholder.SetID(n.ID)
		return placeholder
	}

	children := make([]core.Component, 0, len(n.Children))
	for i, child := range n.Children {
		children = append(children, b.build(child, childPath(path, i), diags))
	}

	in := &Input{Node: n, Children: children, path: path, diags: diags, builder: b}
	c := ctor(in)
	if c == nil {
		in.Warnf("constructor returned no component")
		c = widgets.NewPlaceholder(n.Type)
	}
	b.logger.Debug().Str("type", n.Type).Str("id", n.ID).Int("children", len(children)).Msg("built component")
	return c
}

// Input is what a Constructor receives: the node, its built children and
// typed accessors for its properties.
type Input struct {
	Node     *Node
	Children []core.Component

	path    string
	diags   *[]Diagnostic
	builder *Builder
}

// Warnf records a diagnostic for this node.
func (in *Input) Warnf(format string, args ...any) {
	*in.diags = append(*in.diags, Diagnostic{
		Path:    in.path,
		Type:    in.Node.Type,
		ID:      in.Node.ID,
		Message: fmt.Sprintf(format, args...),
	})
}

// Float returns the first present key among keys as a number.
func (in *Input) Float(keys ...string) (float64, bool) {
	key, v, ok := lookup(in.Node.Props, keys)
	if !ok {
		return 0, false
	}
	f, ok := toFloat64(v)
	if !ok {
		in.Warnf("property %q: expected a number, got %T", key, v)
	}
	return f, ok
}

// FloatOr is Float with a default.
func (in *Input) FloatOr(def float64, keys ...string) float64 {
	if f, ok := in.Float(keys...); ok {
		return f
	}
	return def
}

// String returns the first present key among keys as a string.
func (in *Input) String(keys ...string) (string, bool) {
	key, v, ok := lookup(in.Node.Props, keys)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		in.Warnf("property %q: expected a string, got %T", key, v)
	}
	return s, ok
}

// StringOr is String with a default.
func (in *Input) StringOr(def string, keys ...string) string {
	if s, ok := in.String(keys...); ok {
		return s
	}
	return def
}

// Bool returns the first present key among keys as a boolean.
func (in *Input) Bool(keys ...string) bool {
	key, v, ok := lookup(in.Node.Props, keys)
	if !ok {
		return false
	}
	b, ok := toBool(v)
	if !ok {
		in.Warnf("property %q: expected a boolean, got %T", key, v)
	}
	return b
}

// Color returns the first present key among keys as a color. Missing or
// invalid values yield the transparent color, which widgets treat as unset.
func (in *Input) Color(keys ...string) graphics.Color {
	key, v, ok := lookup(in.Node.Props, keys)
	if !ok {
		return graphics.ColorTransparent
	}
	c, err := toColor(v)
	if err != nil {
		in.Warnf("property %q: %v", key, err)
		return graphics.ColorTransparent
	}
	return c
}

// Handler returns the callback bound to event, or nil when the node does not
// list event or no handler is registered for it.
func (in *Input) Handler(event string) func(ctx *core.Context) {
	for _, e := range in.Node.Events {
		if e != event {
			continue
		}
		fn := in.builder.handlers.lookup(in.Node.ID, event)
		if fn == nil {
			in.builder.logger.Debug().Str("id", in.Node.ID).Str("event", event).Msg("event has no handler")
		}
		return fn
	}
	return nil
}

// NoChildren records a diagnostic when a leaf type was given children.
func (in *Input) NoChildren() {
	if len(in.Children) > 0 {
		in.Warnf("%d children ignored, %s takes none", len(in.Children), in.Node.Type)
	}
}
