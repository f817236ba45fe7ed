package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/strata/pkg/graphics"
)

// OpKind names a recorded draw call.
type OpKind string

const (
	OpClear       OpKind = "clear"
	OpFilledRect  OpKind = "fillRect"
	OpStrokedRect OpKind = "strokeRect"
	OpText        OpKind = "text"
	OpImage       OpKind = "image"
)

// Op is one recorded draw call.
type Op struct {
	Kind  OpKind
	Rect  graphics.Rect
	Color graphics.Color
	Width float64
	Text  string
	Pos   graphics.Vec2
	Image ImageHandle
}

func (o Op) String() string {
	switch o.Kind {
	case OpClear:
		return fmt.Sprintf("clear %s", o.Color.Hex())
	case OpText:
		return fmt.Sprintf("text %q @(%.0f,%.0f)", o.Text, o.Pos.X, o.Pos.Y)
	case OpImage:
		return fmt.Sprintf("image #%d %v", o.Image, o.Rect)
	default:
		return fmt.Sprintf("%s %v %s", o.Kind, o.Rect, o.Color.Hex())
	}
}

// Recorder is a Surface that records draw calls in order.
type Recorder struct {
	size   graphics.Size
	ops    []Op
	images map[string]ImageHandle
}

// NewRecorder returns a Recorder reporting the given drawable size.
func NewRecorder(size graphics.Size) *Recorder {
	return &Recorder{size: size, images: make(map[string]ImageHandle)}
}

func (r *Recorder) Clear(c graphics.Color) {
	r.ops = append(r.ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) DrawFilledRect(rect graphics.Rect, c graphics.Color) {
	r.ops = append(r.ops, Op{Kind: OpFilledRect, Rect: rect, Color: c})
}

func (r *Recorder) DrawStrokedRect(rect graphics.Rect, c graphics.Color, width float64) {
	r.ops = append(r.ops, Op{Kind: OpStrokedRect, Rect: rect, Color: c, Width: width})
}

func (r *Recorder) DrawText(text string, pos graphics.Vec2, style graphics.TextStyle) {
	r.ops = append(r.ops, Op{Kind: OpText, Text: text, Pos: pos, Color: style.Color})
}

func (r *Recorder) DrawImage(rect graphics.Rect, img ImageHandle) {
	r.ops = append(r.ops, Op{Kind: OpImage, Rect: rect, Image: img})
}

// LoadImage succeeds for any path that exists on disk.
func (r *Recorder) LoadImage(path string) (ImageHandle, error) {
	if h, ok := r.images[path]; ok {
		return h, nil
	}
	if _, err := os.Stat(path); err != nil {
		return 0, err
	}
	h := ImageHandle(len(r.images) + 1)
	r.images[path] = h
	return h, nil
}

func (r *Recorder) Size() graphics.Size { return r.size }

// SetSize changes the reported drawable size.
func (r *Recorder) SetSize(size graphics.Size) { r.size = size }

// Ops returns the recorded calls.
func (r *Recorder) Ops() []Op { return r.ops }

// Reset discards recorded calls. Loaded images are kept.
func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// OfKind returns the recorded calls of the given kind.
func (r *Recorder) OfKind(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the text of every OpText call in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.OfKind(OpText) {
		out = append(out, op.Text)
	}
	return out
}

// Dump formats the recorded calls one per line.
func (r *Recorder) Dump() string {
	var b strings.Builder
	for _, op := range r.ops {
		b.WriteString(op.String())
		b.WriteByte('\n')
	}
	return b.String()
}
