package todos

import (
	"testing"

	"github.com/wharflab/relint/internal/message"
	"github.com/wharflab/relint/internal/testutil"
)

func TestChecker_Check(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []message.ID
	}{
		{name: "no markers", content: "// all good\nx := 1\n", want: nil},
		{name: "todo", content: "// TODO: fix this\n", want: []message.ID{"W0511"}},
		{name: "fixme", content: "# FIXME later\n", want: []message.ID{"W0511"}},
		{name: "xxx", content: "// XXX hack\n", want: []message.ID{"W0511"}},
		{name: "marker outside comment", content: "s := \"TODO\"\n", want: nil},
		{name: "one finding per line", content: "// TODO and FIXME\n", want: []message.ID{"W0511"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := testutil.MakeInput(t, "pkg.mod", tt.content)
			got := testutil.Collect(New(), in)
			testutil.AssertMessageIDs(t, got, tt.want)
		})
	}
}
