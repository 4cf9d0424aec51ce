package xcdndiff

import (
	"strings"
	"testing"

	"github.com/gslf/xcdn-go/parse"
	"github.com/gslf/xcdn-go/serialize"
)

func TestDiffTextMarksAddedAndRemovedLines(t *testing.T) {
	a := "a: 1\nb: 2\nc: 3\n"
	b := "a: 1\nb: 20\nc: 3\n"
	out := DiffText(a, b)

	if !strings.Contains(out, "- b: 2\n") {
		t.Errorf("expected a removed line for %q in:\n%s", "b: 2", out)
	}
	if !strings.Contains(out, "+ b: 20\n") {
		t.Errorf("expected an added line for %q in:\n%s", "b: 20", out)
	}
	if !strings.Contains(out, "  a: 1\n") {
		t.Errorf("expected an unchanged line for %q in:\n%s", "a: 1", out)
	}
}

func TestDiffTextIdenticalInputsProduceNoChangeMarkers(t *testing.T) {
	text := "x: 1\ny: 2\n"
	out := DiffText(text, text)
	if strings.Contains(out, "+ ") || strings.Contains(out, "- ") {
		t.Errorf("expected no +/- markers for identical input, got:\n%s", out)
	}
}

func TestDiffOnDocuments(t *testing.T) {
	docA, err := parse.ParseString(`{name: "demo", count: 1}`)
	if err != nil {
		t.Fatalf("ParseString a: %v", err)
	}
	docB, err := parse.ParseString(`{name: "demo", count: 2}`)
	if err != nil {
		t.Fatalf("ParseString b: %v", err)
	}

	if Equal(docA, docB, serialize.DefaultFormat()) {
		t.Errorf("expected documents with different count to differ")
	}

	out := Diff(docA, docB, serialize.DefaultFormat())
	if !strings.Contains(out, "- ") || !strings.Contains(out, "+ ") {
		t.Errorf("expected both removed and added lines in:\n%s", out)
	}
}

func TestEqualDocuments(t *testing.T) {
	docA, err := parse.ParseString(`{a: 1}`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	docB, err := parse.ParseString(`{a: 1}`)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if !Equal(docA, docB, serialize.DefaultFormat()) {
		t.Errorf("expected identical documents to be Equal")
	}
}
