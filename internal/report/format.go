package report

import (
	"strings"
)

// Format renders a ModuleReport back into the canonical text form, the
// inverse of Parse. Warning sets are unordered, so a canonical order is
// fixed here rather than at collection time: modules and records are both
// emitted in lexicographic order. Parse(Format(r)) equals r.
func Format(m ModuleReport) string {
	var b strings.Builder
	for _, module := range m.Modules() {
		b.WriteString(ModuleHeaderPrefix)
		b.WriteString(module)
		b.WriteByte('\n')
		for _, record := range m[module].Sorted() {
			b.WriteString(record)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
