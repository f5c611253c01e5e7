package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func collect(seq func(yield func(Point) bool)) []Point {
	var out []Point
	seq(func(pt Point) bool {
		out = append(out, pt)
		return true
	})
	return out
}
