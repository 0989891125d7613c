package surface

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSapphire  lipgloss.Color = "#74c7ec"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorMauve     lipgloss.Color = "#cba6f7"

	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorCrust    lipgloss.Color = "#11111b"
)

const (
	colorBrand    = colorYellow
	colorMuted    = colorOverlay0
	colorTrack    = colorSurface1
	colorDisabled = colorSurface0
)

var (
	monogramStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCrust).Background(colorBrand).Padding(0, 1)
	tabStyle      = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	tabActive     = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorBrand).Padding(0, 1)
	counterStyle  = lipgloss.NewStyle().Foreground(colorText)
	counterMuted  = lipgloss.NewStyle().Foreground(colorMuted)
	navStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	navDisabled   = lipgloss.NewStyle().Foreground(colorDisabled)
	progressFill  = lipgloss.NewStyle().Foreground(colorBrand)
	progressTrack = lipgloss.NewStyle().Foreground(colorTrack)
	statusStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	promptStyle   = lipgloss.NewStyle().Foreground(colorBrand)
)

// coverTints stand in for the cover photographs: each slide's cover reference
// hashes to one of these.
var coverTints = []lipgloss.Color{
	colorSapphire, colorPeach, colorTeal, colorMauve, colorGreen, colorBlue, colorRosewater,
}

func coverTint(ref string) colorful.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(ref))
	return mustHex(coverTints[h.Sum32()%uint32(len(coverTints))])
}

func mustHex(c lipgloss.Color) colorful.Color {
	out, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{}
	}
	return out
}

// fade blends from bg toward fg by alpha.
func fade(bg, fg colorful.Color, alpha float64) lipgloss.Color {
	return lipgloss.Color(bg.BlendRgb(fg, clamp01(alpha)).Clamped().Hex())
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
