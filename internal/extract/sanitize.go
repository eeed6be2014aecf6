package extract

import "strings"

// Lines reduces raw model output to candidate annotation lines. Models
// wrap their answers in prose and markdown fences no matter how firmly
// the prompt forbids it, so everything that does not look like a
// standoff line is dropped here: surrounding whitespace, blank lines,
// code fences, and any line not starting with T, A or R.
//
// Lines that survive are only candidates. Whether they actually parse
// is decided by ParseLine; a line such as "The essay argues..." never
// gets that far because prose rarely starts with the marker letters.
func Lines(raw string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		switch line[0] {
		case 'T', 'A', 'R':
			out = append(out, line)
		}
	}
	return out
}
