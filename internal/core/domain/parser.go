package domain

import "regexp"

var (
	// #<|NAME|> COMMAND, NAME cannot contain '|', one optional space before COMMAND.
	directivePattern = regexp.MustCompile(`^\s*#<\|([^|]+)\|> ?(.*)$`)

	// HostName VALUE, keyword matched case-insensitively.
	hostNamePattern = regexp.MustCompile(`(?i)^(\s*HostName\s+)(.*)$`)
)

// ParseTasks scans lines once and pairs every directive at index i with a
// HostName line at index i+1. Directives without such a successor are
// reported as orphans.
func ParseTasks(lines []string) ParseResult {
	var result ParseResult

	for i, line := range lines {
		m := directivePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		if i+1 >= len(lines) {
			result.Orphans = append(result.Orphans, Orphan{Name: m[1], Line: i})
			continue
		}

		target := hostNamePattern.FindStringSubmatch(lines[i+1])
		if target == nil {
			result.Orphans = append(result.Orphans, Orphan{Name: m[1], Line: i})
			continue
		}

		result.Tasks = append(result.Tasks, UpdateTask{
			Name:           m[1],
			Command:        m[2],
			AnnotationLine: i,
			TargetLine:     i + 1,
			Prefix:         target[1],
		})
	}

	return result
}

// HostValue returns the current value of a HostName line, or false if line is not one.
func HostValue(line string) (string, bool) {
	m := hostNamePattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[2], true
}
