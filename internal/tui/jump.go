package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// matchTab picks the tab label closest to query. A prefix counts as an exact
// hit; otherwise the edit distance must stay within half the label length.
// Ties go to the earlier tab.
func matchTab(labels []string, query string) (int, bool) {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return 0, false
	}
	best, bestDist := -1, 0
	for i, label := range labels {
		l := strings.ToUpper(label)
		d := levenshtein.ComputeDistance(q, l)
		if strings.HasPrefix(l, q) {
			d = 0
		}
		if d > max(len(l)/2, 1) {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}
