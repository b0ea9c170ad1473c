package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteSARIF(t *testing.T) {
	m := ModuleReport{
		"pkg.core": NewWarningSet(
			"W9001:  1,0: Missing copyright header",
			"C0301: 12,0: Line too long",
		),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, m, "1.2.3"))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc), "SARIF output must be valid JSON")

	out := buf.String()
	require.Contains(t, out, `"relint"`)
	require.Contains(t, out, "1.2.3")
	require.Contains(t, out, "W9001")
	require.Contains(t, out, "C0301")
	require.Contains(t, out, "Missing copyright header")
	require.Contains(t, out, "pkg.core")
}

func TestSplitRecord(t *testing.T) {
	tests := []struct {
		name     string
		record   string
		wantID   string
		wantLine int
		wantCol  int
		wantText string
	}{
		{
			name:     "plain record",
			record:   "C0111:  10,0: Missing docstring",
			wantID:   "C0111",
			wantLine: 10,
			wantCol:  0,
			wantText: "Missing docstring",
		},
		{
			name:     "record with continuation",
			record:   "W0311:  4,2: Bad indentation\n    found 3 spaces",
			wantID:   "W0311",
			wantLine: 4,
			wantCol:  2,
			wantText: "Bad indentation\n    found 3 spaces",
		},
		{
			name:     "record without position",
			record:   "F0001: cannot read file",
			wantID:   "F0001",
			wantLine: 0,
			wantCol:  -1,
			wantText: "cannot read file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, line, col, text := splitRecord(tt.record)
			if id != tt.wantID || line != tt.wantLine || col != tt.wantCol || text != tt.wantText {
				t.Errorf("splitRecord(%q) = (%q, %d, %d, %q), want (%q, %d, %d, %q)",
					tt.record, id, line, col, text,
					tt.wantID, tt.wantLine, tt.wantCol, tt.wantText)
			}
		})
	}
}

func TestSeverityLevels(t *testing.T) {
	m := ModuleReport{
		"mod": NewWarningSet(
			"E1101:  1,0: some error",
			"R0201:  2,0: some refactor hint",
		),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSARIF(&buf, m, ""))

	out := buf.String()
	if !strings.Contains(out, `"error"`) {
		t.Error("E codes should map to SARIF level error")
	}
	if !strings.Contains(out, `"note"`) {
		t.Error("R codes should map to SARIF level note")
	}
}
