package carousel

import "math"

// Ease maps linear progress in [0,1] onto eased progress.
type Ease func(p float64) float64

// Curves follow the power-N naming used by common web tweening libraries:
// power2 is cubic, power3 is quartic.
var (
	EaseNone        Ease = func(p float64) float64 { return p }
	EasePower2In    Ease = func(p float64) float64 { return p * p * p }
	EasePower3Out   Ease = func(p float64) float64 { return 1 - math.Pow(1-p, 4) }
	EasePower2InOut Ease = func(p float64) float64 {
		if p < 0.5 {
			return 4 * p * p * p
		}
		return 1 - math.Pow(-2*p+2, 3)/2
	}
)

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
