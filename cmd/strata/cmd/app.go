package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/go-drift/strata/pkg/core"
	"github.com/go-drift/strata/pkg/engine"
	"github.com/go-drift/strata/pkg/schema"
	"github.com/go-drift/strata/pkg/theme"
)

// appFlags are shared by commands that build and render a document.
type appFlags struct {
	config string
	theme  string
	title  string
	width  int
	height int
}

func (a *appFlags) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&a.config, "config", "c", "", "App config file (.yaml, .yml or .toml)")
	fs.StringVar(&a.theme, "theme", "", `Theme: "dark", "light" or a .toml token file`)
	fs.StringVar(&a.title, "title", "", "Window title")
	fs.IntVar(&a.width, "width", engine.DefaultWidth, "Viewport width")
	fs.IntVar(&a.height, "height", engine.DefaultHeight, "Viewport height")
}

// resolve loads the config file, applies flags that were set explicitly and
// picks the theme. Flags win over the file.
func (a *appFlags) resolve(fs *pflag.FlagSet) (engine.AppConfig, *theme.Theme, error) {
	cfg := engine.DefaultConfig()
	if a.config != "" {
		loaded, err := engine.LoadConfig(a.config)
		if err != nil {
			return cfg, nil, err
		}
		cfg = loaded
	}
	if fs.Changed("title") {
		cfg.Title = a.title
	}
	if fs.Changed("width") {
		cfg.Width = a.width
	}
	if fs.Changed("height") {
		cfg.Height = a.height
	}
	if fs.Changed("theme") {
		cfg.Theme = a.theme
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	t, err := loadTheme(cfg.Theme)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, t, nil
}

func loadTheme(name string) (*theme.Theme, error) {
	switch strings.ToLower(name) {
	case "", "dark":
		return theme.Dark(), nil
	case "light":
		return theme.Light(), nil
	}
	t, err := theme.LoadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}
	return t, nil
}

// buildTree loads the document at path and builds it. Diagnostics never
// stop the build.
func buildTree(path string, builder *schema.Builder, logger zerolog.Logger) (core.Component, error) {
	doc, err := schema.Load(path)
	if err != nil {
		return nil, err
	}
	root, diags, err := builder.BuildDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, d := range diags {
		logger.Debug().Str("path", d.Path).Str("type", d.Type).Str("id", d.ID).Msg(d.Message)
	}
	logger.Debug().
		Str("file", path).
		Int("nodes", doc.Root.Count()).
		Int("diagnostics", len(diags)).
		Msg("document built")
	return root, nil
}
