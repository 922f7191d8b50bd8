package diff

import (
	"strings"
	"testing"

	"github.com/conftree/go-conftree/setting"
)

func group(t *testing.T, fill func(g *setting.Setting)) *setting.Setting {
	t.Helper()
	g := setting.New(setting.GroupType)
	fill(g)
	return g
}

func TestDiffScalars(t *testing.T) {
	from := group(t, func(g *setting.Setting) {
		p, _ := g.Add("port", setting.IntType)
		p.SetInt(80)
		b, _ := g.Add("debug", setting.BoolType)
		b.SetBool(false)
	})
	to := group(t, func(g *setting.Setting) {
		p, _ := g.Add("port", setting.IntType)
		p.SetInt(8080)
		b, _ := g.Add("debug", setting.BoolType)
		b.SetBool(false)
	})

	ds := Diff(from, to)
	if len(ds) != 1 {
		t.Fatalf("Diff() = %d deltas, want 1: %v", len(ds), ds)
	}
	if ds[0].Kind != Changed || ds[0].Path != "port" {
		t.Errorf("delta = %s %q, want changed port", ds[0].Kind, ds[0].Path)
	}
}

func TestDiffFormatFlag(t *testing.T) {
	from := group(t, func(g *setting.Setting) {
		p, _ := g.Add("mask", setting.IntType)
		p.SetInt(255)
	})
	to := group(t, func(g *setting.Setting) {
		p, _ := g.Add("mask", setting.IntType)
		p.SetInt(255)
		p.SetFormat(setting.HexFormat)
	})
	ds := Diff(from, to)
	if len(ds) != 1 || ds[0].Kind != Changed {
		t.Errorf("format-only change: %v", ds)
	}
}

func TestDiffAddRemoveRetype(t *testing.T) {
	from := group(t, func(g *setting.Setting) {
		g.Add("gone", setting.IntType)
		g.Add("stays", setting.BoolType)
		g.Add("turns", setting.IntType)
	})
	to := group(t, func(g *setting.Setting) {
		g.Add("stays", setting.BoolType)
		g.Add("turns", setting.StringType)
		g.Add("fresh", setting.FloatType)
	})

	ds := Diff(from, to)
	got := map[string]Kind{}
	for _, d := range ds {
		got[d.Path] = d.Kind
	}
	want := map[string]Kind{
		"gone":  Removed,
		"turns": Retyped,
		"fresh": Added,
	}
	if len(got) != len(want) {
		t.Fatalf("Diff() = %v, want %v", got, want)
	}
	for path, kind := range want {
		if got[path] != kind {
			t.Errorf("delta at %q = %s, want %s", path, got[path], kind)
		}
	}
}

func TestDiffElems(t *testing.T) {
	from := group(t, func(g *setting.Setting) {
		xs, _ := g.Add("xs", setting.ListType)
		a, _ := xs.Append(setting.IntType)
		a.SetInt(1)
		b, _ := xs.Append(setting.IntType)
		b.SetInt(2)
	})
	to := group(t, func(g *setting.Setting) {
		xs, _ := g.Add("xs", setting.ListType)
		a, _ := xs.Append(setting.IntType)
		a.SetInt(1)
	})

	ds := Diff(from, to)
	if len(ds) != 1 || ds[0].Kind != Removed || ds[0].Path != "xs[1]" {
		t.Errorf("Diff() = %v, want removed xs[1]", ds)
	}
}

func TestDiffStringText(t *testing.T) {
	from := group(t, func(g *setting.Setting) {
		s, _ := g.Add("motd", setting.StringType)
		s.SetString("hello world")
	})
	to := group(t, func(g *setting.Setting) {
		s, _ := g.Add("motd", setting.StringType)
		s.SetString("hello there")
	})

	ds := Diff(from, to)
	if len(ds) != 1 {
		t.Fatalf("Diff() = %d deltas, want 1", len(ds))
	}
	text := ds[0].Text
	if !strings.Contains(text, "[-") || !strings.Contains(text, "[+") {
		t.Errorf("string delta text = %q, want insert and delete markers", text)
	}
	if !strings.Contains(text, "hello ") {
		t.Errorf("string delta text = %q, want shared prefix kept", text)
	}
}

func TestDiffEqualTrees(t *testing.T) {
	mk := func() *setting.Setting {
		return group(t, func(g *setting.Setting) {
			s, _ := g.Add("a", setting.StringType)
			s.SetString("x")
			xs, _ := g.Add("xs", setting.ArrayType)
			i, _ := xs.Append(setting.IntType)
			i.SetInt(3)
		})
	}
	if ds := Diff(mk(), mk()); len(ds) != 0 {
		t.Errorf("Diff(equal trees) = %v, want none", ds)
	}
}
