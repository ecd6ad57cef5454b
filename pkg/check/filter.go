package check

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Filter returns the checks whose names match the glob pattern.
// An empty pattern matches everything.
func Filter(checks []Check, pattern string) ([]Check, error) {
	if pattern == "" {
		return checks, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid check filter %q: %w", pattern, err)
	}

	var matched []Check
	for _, c := range checks {
		if g.Match(c.Name) {
			matched = append(matched, c)
		}
	}

	if len(matched) == 0 {
		return nil, fmt.Errorf("no checks match filter %q", pattern)
	}

	return matched, nil
}
