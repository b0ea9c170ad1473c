package checker

import "strings"

// CommentText returns the text of a comment line with the leader and
// surrounding whitespace stripped, and whether the line is a comment at
// all. Both "//" and "#" leaders are recognized, so the same checkers
// serve every source dialect relint targets.
func CommentText(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "//"):
		return strings.TrimSpace(trimmed[2:]), true
	case strings.HasPrefix(trimmed, "#"):
		return strings.TrimSpace(trimmed[1:]), true
	default:
		return "", false
	}
}

// HeaderBlock returns the file's leading comment block: the run of comment
// lines before the first non-comment, non-blank line. Blank lines inside
// the block are tolerated; the block ends at the first code line.
func HeaderBlock(lines []string) []string {
	var block []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		text, ok := CommentText(line)
		if !ok {
			break
		}
		block = append(block, text)
	}
	return block
}
