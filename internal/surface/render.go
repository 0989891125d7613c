package surface

import (
	"math"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/realgold/showcase/internal/carousel"
)

const (
	MinWidth    = 48
	stageHeight = 14
	floatWidth  = 24
	floatHeight = 7

	// nominal pixels per terminal cell for layer offsets
	pxPerRow = 16.0
	pxPerCol = 5.0

	minAlpha = 0.05
)

// View is everything one frame depends on.
type View struct {
	Deck      *carousel.Deck
	Snapshot  carousel.Snapshot
	Width     int
	Status    string
	Prompting bool
	Prompt    string // jump prompt input, shown while Prompting
	Help      string
}

// Render draws the whole carousel. Same View, same output.
func Render(v View) string {
	width := max(v.Width, MinWidth)
	slides := v.Deck.Slides()
	snap := v.Snapshot

	parts := []string{
		header(slides, snap, width),
		stage(slides, snap, width),
		nav(snap, width),
		progress(snap, width),
	}
	if v.Prompting {
		parts = append(parts, promptStyle.Render("jump to: "+v.Prompt+"▌"))
	} else if v.Status != "" {
		parts = append(parts, statusStyle.Render(ansi.Truncate(v.Status, width, "…")))
	}
	if v.Help != "" {
		parts = append(parts, v.Help)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func header(slides []carousel.Slide, snap carousel.Snapshot, width int) string {
	tabs := make([]string, len(slides))
	for i, s := range slides {
		if snap.Selected(i) {
			tabs[i] = tabActive.Render("▸" + s.TabLabel)
			continue
		}
		tabs[i] = tabStyle.Render(" " + s.TabLabel)
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, monogramStyle.Render("RG"), " ", strings.Join(tabs, ""))

	cur, total := Counter(snap.State.Active, snap.Count)
	right := counterStyle.Render(cur) + counterMuted.Render(" ── ") + counterMuted.Render(total)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// cell is one content row claimed by the most visible child.
type cell struct {
	text  string
	alpha float64
	bold  bool
}

func stage(slides []carousel.Slide, snap carousel.Snapshot, width int) string {
	base := mustHex(colorBase)
	bg := base
	for i, s := range slides {
		a := snap.Visual(snap.Layers[i].Cover).Alpha
		if a <= 0 {
			continue
		}
		bg = bg.BlendRgb(coverTint(s.CoverImageRef).BlendRgb(base, 0.55), clamp01(a))
	}
	bgColor := lipgloss.Color(bg.Clamped().Hex())

	contentWidth := width - floatWidth - 2
	rows := make([]cell, stageHeight)
	for i, s := range slides {
		block := snap.Visual(snap.Layers[i].Content).Alpha
		if block < minAlpha {
			continue
		}
		for j, ch := range contentChildren(s) {
			v := snap.Visual(snap.Layers[i].Children[j])
			a := block * v.Alpha
			if a < minAlpha {
				continue
			}
			r := ch.row + int(math.Round(v.Y/pxPerRow))
			if r < 0 || r >= stageHeight || a <= rows[r].alpha {
				continue
			}
			rows[r] = cell{text: ch.text, alpha: a, bold: ch.bold}
		}
	}

	text := mustHex(colorText)
	lines := make([]string, stageHeight)
	for r, c := range rows {
		style := lipgloss.NewStyle().Background(bgColor).Width(contentWidth)
		if c.text == "" {
			lines[r] = style.Render("")
			continue
		}
		style = style.Foreground(fade(bg, text, c.alpha)).Bold(c.bold)
		lines[r] = style.Render("  " + ansi.Truncate(c.text, contentWidth-4, "…"))
	}
	left := strings.Join(lines, "\n")

	right := floatFrame(slides, snap, bg)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Background(bgColor).Width(2).Height(stageHeight).Render(""), right)
}

type child struct {
	text string
	row  int
	bold bool
}

// contentChildren lays out one slide's animated children in the order the
// arena indexes them.
func contentChildren(s carousel.Slide) []child {
	out := []child{{text: s.Eyebrow, row: 1}}
	r := 3
	for _, ln := range s.HeadlineLines() {
		out = append(out, child{text: ln, row: r, bold: true})
		r++
	}
	r++
	out = append(out, child{text: s.Body, row: r})
	r += 2
	stats := make([]string, len(s.Stats))
	for i, st := range s.Stats {
		stats[i] = st.Value + " " + st.Label
	}
	out = append(out, child{text: strings.Join(stats, "   "), row: r})
	r += 2
	out = append(out, child{text: "[ " + s.CTALabel + " → ]", row: r, bold: true})
	return out
}

func floatFrame(slides []carousel.Slide, snap carousel.Snapshot, bg colorful.Color) string {
	bgColor := lipgloss.Color(bg.Clamped().Hex())
	area := lipgloss.NewStyle().Background(bgColor).Width(floatWidth).Height(stageHeight)

	best, bestAlpha := -1, minAlpha
	for i := range slides {
		if a := snap.Visual(snap.Layers[i].Float).Alpha; a >= bestAlpha {
			best, bestAlpha = i, a
		}
	}
	if best < 0 {
		return area.Render("")
	}
	s := slides[best]
	v := snap.Visual(snap.Layers[best].Float)

	fg := fade(bg, mustHex(colorText), v.Alpha)
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fade(bg, coverTint(s.FloatImageRef), v.Alpha)).
		Foreground(fg).
		Width(floatWidth - 6).
		Height(floatHeight - 2).
		Render(s.TabLabel + "\n\n" + path.Base(s.FloatImageRef))

	shift := int(math.Round(v.X / pxPerCol))
	out := make([]string, 0, floatHeight+2)
	out = append(out, "", "")
	for _, ln := range strings.Split(frame, "\n") {
		switch {
		case shift > 0:
			ln = strings.Repeat(" ", shift) + ln
		case shift < 0:
			ln = ansi.TruncateLeft(ln, -shift, "")
		}
		out = append(out, ansi.Truncate(" "+ln, floatWidth, ""))
	}
	return area.Render(strings.Join(out, "\n"))
}

func nav(snap carousel.Snapshot, width int) string {
	prevOff, nextOff := Controls(snap.State.Active, snap.Count)
	prev := navStyle.Render("‹ PREV")
	if prevOff {
		prev = navDisabled.Render("‹ prev")
	}
	next := navStyle.Render("NEXT ›")
	if nextOff {
		next = navDisabled.Render("next ›")
	}
	gap := max(width-lipgloss.Width(prev)-lipgloss.Width(next), 1)
	return prev + strings.Repeat(" ", gap) + next
}

func progress(snap carousel.Snapshot, width int) string {
	filled := ProgressCells(snap.Progress, width)
	return progressFill.Render(strings.Repeat("━", filled)) + progressTrack.Render(strings.Repeat("─", width-filled))
}
