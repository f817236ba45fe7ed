package schema

import (
	stderrors "errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// CurrentVersion is the document format version written by this package.
// Documents with the same major version are accepted.
const CurrentVersion = "1.0.0"

var (
	// ErrNoRoot is returned for a document without a root node.
	ErrNoRoot = stderrors.New("document has no root node")
	// ErrInvalidVersion is returned when the version is not semantic.
	ErrInvalidVersion = stderrors.New("invalid document version")
	// ErrUnsupportedVersion is returned for a different major version.
	ErrUnsupportedVersion = stderrors.New("unsupported document version")
	// ErrUnknownType marks diagnostics for unregistered type names.
	ErrUnknownType = stderrors.New("unknown component type")
)

// Document is a versioned component tree.
type Document struct {
	Version string `json:"version,omitempty" yaml:"version,omitempty" cbor:"version,omitempty"`
	Root    *Node  `json:"root" yaml:"root" cbor:"root"`
}

// NewDocument wraps root in a Document of the current version.
func NewDocument(root *Node) *Document {
	return &Document{Version: CurrentVersion, Root: root}
}

// CheckVersion reports whether documents of version v can be read. An empty
// version is treated as the current one. A leading "v" is optional.
func CheckVersion(v string) error {
	if v == "" {
		return nil
	}
	canonical := "v" + strings.TrimPrefix(v, "v")
	if !semver.IsValid(canonical) {
		return fmt.Errorf("%w %q", ErrInvalidVersion, v)
	}
	if semver.Major(canonical) != semver.Major("v"+CurrentVersion) {
		return fmt.Errorf("%w %q: this build reads %s.x", ErrUnsupportedVersion, v, semver.Major("v"+CurrentVersion))
	}
	return nil
}

// Diagnostic describes a non-fatal problem found while validating or
// building a tree.
type Diagnostic struct {
	// Path locates the node, such as "root.children[2]".
	Path    string
	Type    string
	ID      string
	Message string
}

func (d Diagnostic) String() string {
	subject := d.Type
	if d.ID != "" {
		subject += "#" + d.ID
	}
	if subject == "" {
		return fmt.Sprintf("%s: %s", d.Path, d.Message)
	}
	return fmt.Sprintf("%s (%s): %s", d.Path, subject, d.Message)
}

// Validate checks the document version and structure against reg. Problems
// that Build tolerates are returned as diagnostics; the error is set only
// for problems that prevent building, and for any diagnostics when strict
// is true.
func (d *Document) Validate(reg *Registry, strict bool) ([]Diagnostic, error) {
	if err := CheckVersion(d.Version); err != nil {
		return nil, err
	}
	if d.Root == nil {
		return nil, ErrNoRoot
	}
	if reg == nil {
		reg = DefaultRegistry()
	}

	var diags []Diagnostic
	seen := make(map[string]string)
	var visit func(n *Node, path string)
	visit = func(n *Node, path string) {
		if n == nil {
			diags = append(diags, Diagnostic{Path: path, Message: "null node"})
			return
		}
		switch {
		case n.Type == "":
			diags = append(diags, Diagnostic{Path: path, ID: n.ID, Message: "missing type"})
		case !reg.Has(n.Type):
			diags = append(diags, Diagnostic{Path: path, Type: n.Type, ID: n.ID, Message: ErrUnknownType.Error()})
		}
		if n.ID != "" {
			if first, dup := seen[n.ID]; dup {
				diags = append(diags, Diagnostic{Path: path, Type: n.Type, ID: n.ID, Message: "duplicate id, first used at " + first})
			} else {
				seen[n.ID] = path
			}
		}
		for i, c := range n.Children {
			visit(c, childPath(path, i))
		}
	}
	visit(d.Root, "root")

	if strict && len(diags) > 0 {
		return diags, fmt.Errorf("document has %d problem(s), first: %s", len(diags), diags[0])
	}
	return diags, nil
}

func childPath(parent string, i int) string {
	return fmt.Sprintf("%s.children[%d]", parent, i)
}
