package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"honnef.co/go/svg2pts/geom"
	"honnef.co/go/svg2pts/svg"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConvertRawPolyline(t *testing.T) {
	doc := &svg.Document{
		Paths: []geom.BezPath{{
			geom.MoveTo(geom.Pt(0, 0)),
			geom.LineTo(geom.Pt(10, 0)),
			geom.LineTo(geom.Pt(10, 0.5)),
		}},
	}
	var buf bytes.Buffer
	if err := convert(&buf, doc, 0.1, 0, testLogger()); err != nil {
		t.Fatal(err)
	}
	want := "0 0\n10 0\n10 0.5\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConvertResampled(t *testing.T) {
	doc := &svg.Document{
		Paths: []geom.BezPath{{
			geom.MoveTo(geom.Pt(0, 0)),
			geom.LineTo(geom.Pt(10, 0)),
		}},
	}
	var buf bytes.Buffer
	if err := convert(&buf, doc, 0.1, 3, testLogger()); err != nil {
		t.Fatal(err)
	}
	want := "0 0\n3 0\n6 0\n9 0\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConvertSubpathsIndependent(t *testing.T) {
	// Resampling restarts at each subpath; no point is interpolated across
	// the gap between them.
	doc := &svg.Document{
		Paths: []geom.BezPath{{
			geom.MoveTo(geom.Pt(0, 0)),
			geom.LineTo(geom.Pt(4, 0)),
			geom.MoveTo(geom.Pt(100, 0)),
			geom.LineTo(geom.Pt(104, 0)),
		}},
	}
	var buf bytes.Buffer
	if err := convert(&buf, doc, 0.1, 3, testLogger()); err != nil {
		t.Fatal(err)
	}
	want := "0 0\n3 0\n100 0\n103 0\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.svg")
	out := filepath.Join(dir, "out.txt")
	err := os.WriteFile(in, []byte(
		`<svg height="10"><path d="M 0 0 L 10 0"/></svg>`), 0o666)
	if err != nil {
		t.Fatal(err)
	}

	if err := run([]string{in, out}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "0 10\n10 10\n"
	if got := string(data); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunInvalidFlags(t *testing.T) {
	if err := run([]string{"-d", "-1"}); !errors.Is(err, geom.ErrInvalidDistance) {
		t.Errorf("got %v, want ErrInvalidDistance", err)
	}
	if err := run([]string{"-a", "0"}); !errors.Is(err, geom.ErrInvalidAccuracy) {
		t.Errorf("got %v, want ErrInvalidAccuracy", err)
	}
	if err := run([]string{"a", "b", "c"}); err == nil || !strings.Contains(err.Error(), "arguments") {
		t.Errorf("got %v, want an argument count error", err)
	}
}

func TestRunMissingInput(t *testing.T) {
	if err := run([]string{filepath.Join(t.TempDir(), "nope.svg")}); err == nil {
		t.Error("expected an error for a missing input file")
	}
}
