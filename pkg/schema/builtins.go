package schema

import (
	"strings"

	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/layout"
	"github.com/go-drift/strata/pkg/widgets"
)

const (
	defaultLabelText  = "Label"
	defaultButtonText = "Button"
	defaultImagePath  = "assets/placeholder.png"
)

func registerBuiltins(r *Registry) {
	r.Register("VStack", buildVStack)
	r.Register("HStack", buildHStack)
	r.Register("ZStack", buildZStack)
	r.Register("SplitView", buildSplitView)
	r.Register("Label", buildLabel)
	r.Register("Button", buildButton)
	r.Register("Box", buildBox)
	r.Register("Image", buildImage)
}

func stackConfig(in *Input) widgets.StackConfig {
	cfg := widgets.StackConfig{
		ID:         in.Node.ID,
		Gap:        in.FloatOr(0, "spacing", "gap"),
		Padding:    in.FloatOr(0, "padding"),
		Background: in.Color("background"),
	}
	if s, ok := in.String("alignment", "align"); ok {
		a, err := layout.ParseCrossAlignment(s)
		if err != nil {
			in.Warnf("property %q: %v", "alignment", err)
		}
		cfg.Alignment = a
	}
	return cfg
}

func buildVStack(in *Input) core.Component {
	return widgets.NewVStack(stackConfig(in), in.Children...)
}

func buildHStack(in *Input) core.Component {
	return widgets.NewHStack(stackConfig(in), in.Children...)
}

func buildZStack(in *Input) core.Component {
	return widgets.NewZStack(widgets.ZStackConfig{
		ID:         in.Node.ID,
		Padding:    in.FloatOr(0, "padding"),
		Background: in.Color("background"),
	}, in.Children...)
}

func buildSplitView(in *Input) core.Component {
	cfg := widgets.SplitConfig{
		ID:         in.Node.ID,
		Ratio:      in.FloatOr(0, "ratio"),
		MinRatio:   in.FloatOr(0, "min_ratio"),
		MaxRatio:   in.FloatOr(0, "max_ratio"),
		GutterSize: in.FloatOr(0, "gutter"),
	}
	if s, ok := in.String("direction", "orientation"); ok {
		switch strings.ToLower(s) {
		case "horizontal", "row":
			cfg.Orientation = widgets.SplitHorizontal
		case "vertical", "column":
			cfg.Orientation = widgets.SplitVertical
		default:
			in.Warnf("property %q: unknown direction %q", "direction", s)
		}
	}

	panes := in.Children
	if len(panes) != 2 {
		in.Warnf("SplitView takes 2 children, got %d", len(panes))
	}
	for len(panes) < 2 {
		panes = append(panes, widgets.NewLabel(widgets.LabelConfig{}))
	}
	return widgets.NewSplitView(cfg, panes[0], panes[1])
}

func buildLabel(in *Input) core.Component {
	in.NoChildren()
	return widgets.NewLabel(widgets.LabelConfig{
		ID:       in.Node.ID,
		Text:     in.StringOr(defaultLabelText, "text", "label"),
		Color:    in.Color("color"),
		FontSize: in.FloatOr(0, "font_size", "size"),
	})
}

func buildButton(in *Input) core.Component {
	in.NoChildren()
	variant := strings.ToLower(in.StringOr("", "variant"))
	switch variant {
	case "", "primary", "secondary", "danger":
	default:
		in.Warnf("property %q: unknown variant %q", "variant", variant)
		variant = ""
	}
	return widgets.NewButton(widgets.ButtonConfig{
		ID:       in.Node.ID,
		Label:    in.StringOr(defaultButtonText, "label", "text"),
		Variant:  variant,
		Disabled: in.Bool("disabled"),
		OnClick:  in.Handler("on_click"),
	})
}

func buildBox(in *Input) core.Component {
	in.NoChildren()
	return widgets.NewBox(widgets.BoxConfig{
		ID:        in.Node.ID,
		Width:     in.FloatOr(0, "width"),
		Height:    in.FloatOr(0, "height"),
		Color:     in.Color("color", "background"),
		Focusable: in.Bool("focusable"),
		OnClick:   in.Handler("on_click"),
	})
}

func buildImage(in *Input) core.Component {
	in.NoChildren()
	return widgets.NewImage(widgets.ImageConfig{
		ID:     in.Node.ID,
		Path:   in.StringOr(defaultImagePath, "path", "src"),
		Width:  in.FloatOr(0, "width"),
		Height: in.FloatOr(0, "height"),
	})
}
