package report

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/wharflab/relint/internal/message"
)

// Default SARIF tool information.
const (
	sarifToolName = "relint"
	sarifToolURI  = "https://github.com/wharflab/relint"
)

// recordPattern splits a warning record's primary line into message ID,
// line, column and message text.
var recordPattern = regexp.MustCompile(`^([WCEFR]\d{4}):\s+(\d+),(\d+): (.*)`)

// WriteSARIF renders a ModuleReport as a SARIF v2.1.0 report. SARIF output
// is a secondary surface for CI integration; the canonical text format
// remains the round-trip source of truth.
func WriteSARIF(w io.Writer, m ModuleReport, toolVersion string) error {
	rep := sarif.NewReport()

	run := sarif.NewRunWithInformationURI(sarifToolName, sarifToolURI)
	if toolVersion != "" {
		run.Tool.Driver.WithVersion(toolVersion)
	}

	seenRules := make(map[string]bool)

	for _, module := range m.Modules() {
		run.AddDistinctArtifact(module)

		for _, record := range m[module].Sorted() {
			id, line, col, text := splitRecord(record)
			if !seenRules[id] {
				seenRules[id] = true
				run.AddRule(id)
			}

			result := sarif.NewRuleResult(id).
				WithMessage(sarif.NewTextMessage(text)).
				WithLevel(severityToSARIFLevel(message.ID(id).Severity()))

			physicalLocation := sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewSimpleArtifactLocation(module))
			if line > 0 {
				region := sarif.NewRegion().WithStartLine(line)
				if col >= 0 {
					region.WithStartColumn(col + 1) // SARIF uses 1-based columns
				}
				physicalLocation.WithRegion(region)
			}

			result.WithLocations([]*sarif.Location{
				sarif.NewLocationWithPhysicalLocation(physicalLocation),
			})
			run.AddResult(result)
		}
	}

	rep.AddRun(run)
	return rep.PrettyWrite(w)
}

// splitRecord extracts the message ID, position and text from a record's
// primary line. Records always start with a message ID (parser invariant);
// position and text fall back to zero values when the line deviates from
// the reporter's layout.
func splitRecord(record string) (id string, line, col int, text string) {
	primary, rest, _ := strings.Cut(record, "\n")
	match := recordPattern.FindStringSubmatch(primary)
	if match == nil {
		idPart, msg, _ := strings.Cut(primary, ":")
		return idPart, 0, -1, strings.TrimSpace(msg)
	}
	line, _ = strconv.Atoi(match[2])
	col, _ = strconv.Atoi(match[3])
	text = match[4]
	if rest != "" {
		text += "\n" + rest
	}
	return match[1], line, col, text
}

// severityToSARIFLevel maps a message severity class to a SARIF level.
func severityToSARIFLevel(s message.Severity) string {
	switch s {
	case message.SeverityError, message.SeverityFatal:
		return "error"
	case message.SeverityWarning:
		return "warning"
	case message.SeverityConvention, message.SeverityRefactor:
		return "note"
	default:
		return "warning"
	}
}
