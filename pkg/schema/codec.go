package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/strata/pkg/errors"
)

// Format is a document encoding.
type Format int

const (
	// FormatJSON is JSON; comments and trailing commas are accepted on read.
	FormatJSON Format = iota
	// FormatYAML is YAML.
	FormatYAML
	// FormatCBOR is binary CBOR with deterministic encoding.
	FormatCBOR
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json", "jsonc":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return FormatJSON, fmt.Errorf("unknown schema format %q", s)
	}
}

// FormatOf returns the format implied by a file name's extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

var (
	cborDecMode cbor.DecMode
	cborEncMode cbor.EncMode
)

func init() {
	var err error
	// Nested property maps decode with string keys, matching JSON and YAML.
	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// envelope detects whether a file holds a Document or a bare root Node.
type envelope struct {
	Version string `json:"version" yaml:"version" cbor:"version"`
	Root    *Node  `json:"root" yaml:"root" cbor:"root"`
}

// Parse decodes a document. Input that is a bare node rather than a
// {version, root} document is wrapped with an empty version.
func Parse(data []byte, format Format) (*Document, error) {
	var (
		env  envelope
		bare Node
		err  error
	)
	switch format {
	case FormatJSON:
		data = jsonc.ToJSON(data)
		if err = json.Unmarshal(data, &env); err == nil && env.Root == nil {
			err = json.Unmarshal(data, &bare)
		}
	case FormatYAML:
		if err = yaml.Unmarshal(data, &env); err == nil && env.Root == nil {
			err = yaml.Unmarshal(data, &bare)
		}
	case FormatCBOR:
		if err = cborDecMode.Unmarshal(data, &env); err == nil && env.Root == nil {
			err = cborDecMode.Unmarshal(data, &bare)
		}
	default:
		return nil, fmt.Errorf("unknown schema format %v", format)
	}
	if err != nil {
		return nil, errors.New("schema.Parse", errors.KindSchema, fmt.Errorf("%s: %w", format, err))
	}

	doc := &Document{Version: env.Version, Root: env.Root}
	if doc.Root == nil && bare.Type != "" {
		doc.Root = &bare
	}
	if doc.Root == nil {
		return nil, errors.New("schema.Parse", errors.KindSchema, ErrNoRoot)
	}
	if err := CheckVersion(doc.Version); err != nil {
		return nil, errors.New("schema.Parse", errors.KindSchema, err)
	}
	return doc, nil
}

// Marshal encodes doc. JSON output is indented.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatCBOR:
		return cborEncMode.Marshal(doc)
	default:
		return nil, fmt.Errorf("unknown schema format %v", format)
	}
}

// Load reads and parses the document at path, choosing the format from the
// extension.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save encodes doc to path in the format implied by its extension.
func Save(doc *Document, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
