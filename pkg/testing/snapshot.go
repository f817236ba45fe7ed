package testing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/strata/pkg/core"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the laid-out tree and the draw calls of one frame.
type Snapshot struct {
	Tree *Node    `yaml:"tree"`
	Ops  []string `yaml:"ops,omitempty"`
	Over []*Node  `yaml:"overlays,omitempty"`
}

// Node is one component in a Snapshot.
type Node struct {
	Type     string     `yaml:"type"`
	ID       string     `yaml:"id,omitempty"`
	Bounds   [4]float64 `yaml:"bounds,flow"`
	Children []*Node    `yaml:"children,omitempty"`
}

// CaptureSnapshot records the current tree geometry and the draw calls of
// the last frame.
func (h *Harness) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{Tree: captureNode(h.engine.Root())}
	for _, o := range h.Context().Overlays().Components() {
		snap.Over = append(snap.Over, captureNode(o))
	}
	for _, op := range h.recorder.Ops() {
		snap.Ops = append(snap.Ops, op.String())
	}
	return snap
}

func captureNode(c core.Component) *Node {
	b := c.Bounds()
	n := &Node{
		Type:   strings.TrimPrefix(fmt.Sprintf("%T", c), "*"),
		ID:     c.ID(),
		Bounds: [4]float64{b.X, b.Y, b.Width, b.Height},
	}
	if v, ok := c.(core.ChildVisitor); ok {
		v.VisitChildren(func(child core.Component) {
			n.Children = append(n.Children, captureNode(child))
		})
	}
	return n
}

// MatchesFile compares this snapshot against a golden file. When
// STRATA_UPDATE_SNAPSHOTS=1 is set, the file is written instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("STRATA_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: STRATA_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}
	var expected Snapshot
	if err := yaml.Unmarshal(data, &expected); err != nil {
		t.Fatalf("failed to parse snapshot %s: %v", path, err)
		return
	}
	if diff := s.Diff(&expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: STRATA_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to path, creating directories as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns the differing lines between this snapshot and other, or ""
// when they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := yaml.Marshal(s)
	b, _ := yaml.Marshal(other)
	if bytes.Equal(a, b) {
		return ""
	}
	got := strings.Split(string(a), "\n")
	want := strings.Split(string(b), "\n")
	var sb strings.Builder
	for i := 0; i < len(got) || i < len(want); i++ {
		var g, w string
		if i < len(got) {
			g = got[i]
		}
		if i < len(want) {
			w = want[i]
		}
		if g != w {
			fmt.Fprintf(&sb, "line %d:\n  - %s\n  + %s\n", i+1, w, g)
		}
	}
	return sb.String()
}
