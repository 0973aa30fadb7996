package matcher

import "strings"

// Match reports whether name satisfies pattern. A pattern is a comma separated
// list of prefixes; "*" matches any name and an empty pattern matches nothing.
func Match(pattern, name string) bool {
	for _, alt := range strings.Split(pattern, ",") {
		alt = strings.TrimSpace(alt)
		switch alt {
		case "":
			continue
		case "*":
			return true
		}
		if strings.HasPrefix(name, strings.TrimSuffix(alt, "*")) {
			return true
		}
	}
	return false
}
