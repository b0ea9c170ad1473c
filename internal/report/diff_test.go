package report

import (
	"testing"
)

func TestDiff_SelfIdentity(t *testing.T) {
	reports := []ModuleReport{
		{},
		{"foo": NewWarningSet("W9001:  1,0: Missing copyright header")},
		{
			"foo": NewWarningSet("W9001:  1,0: Missing copyright header"),
			"bar": NewWarningSet("C0111:  10,0: Missing docstring", "C0301: 12,0: Line too long"),
		},
	}
	for _, r := range reports {
		if got := Diff(r, r); len(got) != 0 {
			t.Errorf("Diff(r, r) = %v, want empty", got)
		}
	}
}

func TestDiff_NewWarningsOnly(t *testing.T) {
	baseline := ModuleReport{
		"foo": NewWarningSet("W9001:  1,0: Missing copyright header"),
		"bar": NewWarningSet(
			"W9002:  1,0: Missing a reference to test module in header",
			"C0111:  10,0: Missing docstring",
		),
	}
	current := ModuleReport{
		"foo": NewWarningSet(
			"W9001:  1,0: Missing copyright header",
			"C0301: 10,0: Line too long",
		),
		"bar": NewWarningSet(
			"W9002:  1,0: Missing a reference to test module in header",
			"C0111:  10,0: Missing docstring",
		),
		"baz": NewWarningSet("W9001:  1,0: Missing copyright header"),
	}

	got := Diff(baseline, current)

	want := ModuleReport{
		"foo": NewWarningSet("C0301: 10,0: Line too long"),
		"baz": NewWarningSet("W9001:  1,0: Missing copyright header"),
	}
	if !got.Equal(want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
	if _, ok := got["bar"]; ok {
		t.Error("unchanged module must be omitted from the diff")
	}
}

func TestDiff_Asymmetry(t *testing.T) {
	onlyBaseline := ModuleReport{
		"gone": NewWarningSet("C0111:  1,0: Missing docstring"),
	}
	onlyCurrent := ModuleReport{
		"fresh": NewWarningSet("C0111:  1,0: Missing docstring"),
	}

	// A module present only in current contributes its full warning set.
	got := Diff(ModuleReport{}, onlyCurrent)
	if !got.Equal(onlyCurrent) {
		t.Errorf("Diff(empty, current) = %v, want %v", got, onlyCurrent)
	}

	// A module present only in the baseline contributes nothing:
	// fixed warnings are never reported.
	got = Diff(onlyBaseline, ModuleReport{})
	if len(got) != 0 {
		t.Errorf("Diff(baseline, empty) = %v, want empty", got)
	}
}

func TestDiff_EmptyDifferencesOmitted(t *testing.T) {
	baseline := ModuleReport{"foo": NewWarningSet("a", "b")}
	current := ModuleReport{"foo": NewWarningSet("a")}

	got := Diff(baseline, current)
	if len(got) != 0 {
		t.Errorf("module with no new warnings must be omitted entirely, got %v", got)
	}
}
