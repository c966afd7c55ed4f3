// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"go.astrophena.name/footers/testutil"
)

func TestLogfWriter(t *testing.T) {
	var message string
	logf := func(format string, args ...any) {
		message = fmt.Sprintf(format, args...)
	}
	n, err := Logf(logf).Write([]byte("hello"))
	testutil.AssertEqual(t, err, nil)
	testutil.AssertEqual(t, n, 5)
	testutil.AssertEqual(t, message, "hello")
}

func newBufferHandler(buf *bytes.Buffer, level slog.Leveler) slog.Handler {
	return slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
}

func TestFanout(t *testing.T) {
	l := New(nil)
	var first, second bytes.Buffer
	l.Attach(newBufferHandler(&first, l.Level))
	l.Attach(newBufferHandler(&second, slog.LevelError))

	ctx := Put(context.Background(), l)
	Info(ctx, "copied", slog.String("path", "a.html"))
	Error(ctx, "failed", slog.String("path", "b.html"))

	testutil.AssertEqual(t, first.String(), "level=INFO msg=copied path=a.html\nlevel=ERROR msg=failed path=b.html\n")
	testutil.AssertEqual(t, second.String(), "level=ERROR msg=failed path=b.html\n")
}

func TestLevel(t *testing.T) {
	l := New(nil)
	var buf bytes.Buffer
	l.Attach(newBufferHandler(&buf, l.Level))
	ctx := Put(context.Background(), l)

	Debug(ctx, "hidden")
	l.Level.Set(slog.LevelDebug)
	Debug(ctx, "shown")

	testutil.AssertEqual(t, buf.String(), "level=DEBUG msg=shown\n")
}

func TestWithAttrs(t *testing.T) {
	l := New(nil)
	var buf bytes.Buffer
	l.Attach(newBufferHandler(&buf, l.Level))

	l.With("run", 1).WithGroup("file").Info("done", "name", "a.html")
	testutil.AssertEqual(t, buf.String(), "level=INFO msg=done run=1 file.name=a.html\n")
}

func TestGet(t *testing.T) {
	if !IsDefault(Get(context.Background())) {
		t.Fatal("Get on an empty context must return the default logger")
	}
	l := New(nil)
	ctx := Put(context.Background(), l)
	if Get(ctx) != l {
		t.Fatal("Get must return the logger stored by Put")
	}
	testutil.AssertEqual(t, l.Level.Level(), slog.LevelInfo)
}
