package report

import (
	"strings"

	"github.com/wharflab/relint/internal/message"
)

// Parse converts the canonical check-run text into a ModuleReport.
//
// The text is processed line by line:
//   - a module-header line flushes the previous module's accumulated
//     warnings and starts a new accumulation;
//   - a line starting with a message ID opens a new warning record;
//   - any other non-empty line is a continuation of the most recently
//     opened record, joined with "\n". A continuation with no open record
//     is malformed input and is discarded silently: report text is a
//     trusted internal format, not untrusted user input.
//
// Input with no module header yields an empty report.
func Parse(text string) ModuleReport {
	result := make(ModuleReport)

	var (
		module  string
		records []string
	)

	flush := func() {
		if module == "" {
			return
		}
		set := make(WarningSet, len(records))
		for _, r := range records {
			set.Add(r)
		}
		result[module] = set
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, ModuleHeaderPrefix):
			flush()
			module = strings.TrimPrefix(line, ModuleHeaderPrefix)
			records = nil
		case message.LinePattern.MatchString(line):
			records = append(records, line)
		case line != "":
			if len(records) > 0 {
				records[len(records)-1] += "\n" + line
			}
		}
	}
	flush()

	return result
}
