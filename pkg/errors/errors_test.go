package errors

import (
	"bytes"
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	err := &Error{Op: "schema.Build", Kind: KindSchema, Subject: "Slider", Err: stderrors.New("unknown type")}
	assert.Equal(t, "schema.Build [schema] Slider: unknown type", err.Error())

	bare := New("widgets.Image.Render", KindResource, fs.ErrNotExist)
	assert.Equal(t, "widgets.Image.Render [resource]: file does not exist", bare.Error())
	assert.True(t, stderrors.Is(bare, fs.ErrNotExist))
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindSchema, "schema"},
		{KindResource, "resource"},
		{KindConfig, "config"},
		{KindRender, "render"},
		{KindDispatch, "dispatch"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestPanicErrorString(t *testing.T) {
	assert.Equal(t, "panic in engine.Frame: boom", (&PanicError{Op: "engine.Frame", Value: "boom"}).Error())
	assert.Equal(t, "panic: boom", (&PanicError{Value: "boom"}).Error())
}

func TestReportSetsTimestamp(t *testing.T) {
	c := &Collector{}
	prev := SetHandler(c)
	t.Cleanup(func() { SetHandler(prev) })

	Report(New("op", KindConfig, stderrors.New("bad")))
	Report(nil)

	require.Len(t, c.Errors, 1)
	assert.False(t, c.Errors[0].Timestamp.IsZero())
	assert.Contains(t, c.Errors[0].StackTrace, "TestReportSetsTimestamp")

	kept := &Error{Op: "op", Kind: KindConfig, Err: stderrors.New("bad"), StackTrace: "given"}
	Report(kept)
	assert.Equal(t, "given", kept.StackTrace)
}

func TestRecoverReportsPanic(t *testing.T) {
	c := &Collector{}
	prev := SetHandler(c)
	t.Cleanup(func() { SetHandler(prev) })

	var recovered any
	func() {
		defer RecoverWithCallback("test.op", func(r any) { recovered = r })
		panic("kaboom")
	}()

	require.Len(t, c.Panics, 1)
	assert.Equal(t, "test.op", c.Panics[0].Op)
	assert.Equal(t, "kaboom", recovered)
	assert.NotEmpty(t, c.Panics[0].StackTrace)
}

func TestLogHandlerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	h := NewLogHandler(&logger)

	h.HandleError(&Error{Op: "schema.Build", Kind: KindSchema, Subject: "Slider", Err: stderrors.New("unknown type")})
	out := buf.String()
	assert.True(t, strings.Contains(out, `"kind":"schema"`), out)
	assert.True(t, strings.Contains(out, `"subject":"Slider"`), out)

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "engine.Frame", Value: "boom", StackTrace: "frames"})
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), `"kind":"panic"`)
	assert.NotContains(t, buf.String(), `"stack"`)

	buf.Reset()
	h.Verbose = true
	h.HandlePanic(&PanicError{Op: "engine.Frame", Value: "boom", StackTrace: "frames"})
	assert.Contains(t, buf.String(), `"stack":"frames"`)
}

func TestSetHandlerReturnsPrevious(t *testing.T) {
	first := &Collector{}
	prev := SetHandler(first)
	t.Cleanup(func() { SetHandler(prev) })

	second := &Collector{}
	assert.Same(t, first, SetHandler(second))
	assert.Same(t, second, CurrentHandler())

	SetHandler(nil)
	_, isLog := CurrentHandler().(*LogHandler)
	assert.True(t, isLog)
}
