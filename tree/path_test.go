package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathString(t *testing.T) {
	if s := (Path{0, 1, 12}).String(); s != "[0, 1, 12]" {
		t.Errorf("expected path to render as [0, 1, 12], is %s", s)
	}
	if s := RootPath.String(); s != "[]" {
		t.Errorf("expected root path to render as [], is %s", s)
	}
}

func TestPathOperations(t *testing.T) {
	p := Path{1, 2, 3}
	c := p.Concat(4, 5)
	p[0] = 9
	if diff := cmp.Diff(Path{1, 2, 3, 4, 5}, c); diff != "" {
		t.Errorf("Concat mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Path{1, 2}, c.DropLast(3)); diff != "" {
		t.Errorf("DropLast mismatch (-want +got):\n%s", diff)
	}
	if d := c.DropLast(7); len(d) != 0 || d == nil {
		t.Errorf("expected DropLast beyond length to return an empty path, got %#v", d)
	}
	if c.Last() != 5 || RootPath.Last() != -1 {
		t.Error("Last returned wrong index")
	}
	if !Path(nil).Equal(Path{}) || p.Equal(c) {
		t.Error("Equal compares wrongly")
	}
	assertInvariantPanic(t, "negative DropLast", func() {
		spare := make(Path, 2, 4)
		spare[0], spare[1] = 1, 2
		spare.DropLast(-1)
	})
	if Path(nil).Clone() != nil {
		t.Error("expected clone of nil path to be nil")
	}
}
