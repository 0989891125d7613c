package surface

import (
	"fmt"
	"math"
	"strings"
)

// Counter returns the zero-padded "current / total" labels: current is the
// one-based active slide, total is count-1.
func Counter(active, count int) (current, total string) {
	return pad2(active + 1), pad2(count - 1)
}

func pad2(n int) string { return fmt.Sprintf("%02d", n) }

// Controls reports which navigation buttons are disabled. Buttons never wrap.
func Controls(active, count int) (prevDisabled, nextDisabled bool) {
	return active <= 0, active >= count-1
}

// ProgressCells is how many of width cells the indicator fills.
func ProgressCells(fraction float64, width int) int {
	if width <= 0 {
		return 0
	}
	n := int(math.Round(clamp01(fraction) * float64(width)))
	return min(max(n, 0), width)
}

// ProgressBar renders the indicator as plain runes.
func ProgressBar(fraction float64, width int) string {
	filled := ProgressCells(fraction, width)
	return strings.Repeat("━", filled) + strings.Repeat("─", max(width-filled, 0))
}
