package radar

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"coinhunt.klederson.com/internal/config"
	"coinhunt.klederson.com/internal/hunt"
)

var (
	colorBright  = lipgloss.Color("#FFD75F")
	colorMid     = lipgloss.Color("#AF8700")
	colorDim     = lipgloss.Color("#585123")
	colorLocked  = lipgloss.Color("#FF5F5F")
	colorCollect = lipgloss.Color("#5FFF87")
	colorNear    = lipgloss.Color("#D7AF5F")

	styleCenter  = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleOuter   = lipgloss.NewStyle().Foreground(colorMid)
	styleDot     = lipgloss.NewStyle().Foreground(colorDim)
	styleCoin    = lipgloss.NewStyle().Foreground(colorBright)
	styleTarget  = lipgloss.NewStyle().Foreground(colorCollect).Bold(true)
	styleLockDev = lipgloss.NewStyle().Foreground(colorLocked).Bold(true)
	styleNearR   = lipgloss.NewStyle().Foreground(colorNear)
	styleCollR   = lipgloss.NewStyle().Foreground(colorCollect)
	styleLabel   = lipgloss.NewStyle().Foreground(colorMid)
	styleLabelT  = lipgloss.NewStyle().Foreground(colorCollect)
)

// Blip is one coin prepared for plotting, relative to the player at the
// radar center.
type Blip struct {
	hunt.RangedCoin
	Target bool
	Locked bool
}

type plotted struct {
	col, row int
	blip     Blip
	label    string
	labelCol int
	labelRow int
}

// Render draws the hunt radar: the player at center, zone circles at the
// near and collect distances, and every pool coin at its true bearing
// and range. Coins past MaxRange pin to the outer edge.
func Render(width, height int, blips []Blip, sweep *Sweep) string {
	if width < 10 || height < 5 {
		return ""
	}

	centerX := width / 2
	centerY := height / 2
	radius := math.Min(float64(centerX-1), float64(centerY-1)/config.AspectRatio)
	if radius < 3 {
		radius = 3
	}

	nearR := config.NearDistance / config.MaxRange * radius
	collectR := config.CollectDistance / config.MaxRange * radius

	plots := placeBlips(blips, centerX, centerY, radius, width)

	// Label lookup: cell key -> (plot index, char offset)
	type labelCell struct{ pi, ci int }
	labels := make(map[int]labelCell)
	for i, p := range plots {
		for ci := 0; ci < len(p.label); ci++ {
			labels[p.labelRow*width+p.labelCol+ci] = labelCell{pi: i, ci: ci}
		}
	}
	symbols := make(map[int]int, len(plots))
	for i, p := range plots {
		symbols[p.row*width+p.col] = i
	}

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			key := row*width + col
			if pi, ok := symbols[key]; ok {
				sb.WriteString(renderBlip(plots[pi].blip))
				continue
			}
			if lc, ok := labels[key]; ok {
				p := plots[lc.pi]
				sty := styleLabel
				if p.blip.Target {
					sty = styleLabelT
				}
				sb.WriteString(sty.Render(string(p.label[lc.ci])))
				continue
			}
			sb.WriteString(renderCell(col, row, centerX, centerY, radius, nearR, collectR, sweep))
		}
		if row < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// placeBlips projects blips to cells and attaches value labels, skipping
// labels that would overlap. The target is placed last so it wins cell
// conflicts.
func placeBlips(blips []Blip, centerX, centerY int, radius float64, width int) []plotted {
	ordered := make([]Blip, 0, len(blips))
	var target *Blip
	for i, b := range blips {
		if b.Target {
			target = &blips[i]
			continue
		}
		ordered = append(ordered, b)
	}
	if target != nil {
		ordered = append(ordered, *target)
	}

	type segment struct{ start, end int }
	occupied := make(map[int][]segment)
	overlaps := func(row, start, end int) bool {
		for _, s := range occupied[row] {
			if start < s.end && end > s.start {
				return true
			}
		}
		return false
	}

	plots := make([]plotted, 0, len(ordered))
	for _, b := range ordered {
		col, row := plotCell(b.Distance, b.Bearing, config.MaxRange, radius, centerX, centerY)

		label := ""
		if b.Target || b.Distance <= config.NearDistance {
			label = b.DisplayValue()
		}
		lc, lr := col+2, row
		if lc+len(label) >= width {
			lc = col - len(label) - 1
		}
		if lc < 0 {
			lc = 0
		}
		if label != "" && overlaps(lr, lc, lc+len(label)) {
			lr = row + 1
			if overlaps(lr, lc, lc+len(label)) {
				label = "" // keep the plot clean over a crowded field
			}
		}

		plots = append(plots, plotted{col: col, row: row, blip: b, label: label, labelCol: lc, labelRow: lr})
		occupied[row] = append(occupied[row], segment{col, col + 1})
		if label != "" {
			occupied[lr] = append(occupied[lr], segment{lc, lc + len(label)})
		}
	}
	return plots
}

func renderBlip(b Blip) string {
	switch {
	case b.Target && b.Locked:
		return styleLockDev.Render("*")
	case b.Target:
		return styleTarget.Render("*")
	case b.Locked:
		return styleLockDev.Render("$")
	default:
		return styleCoin.Render("$")
	}
}

func renderCell(col, row, centerX, centerY int, radius, nearR, collectR float64, sweep *Sweep) string {
	dist, angle := cellPolar(col, row, centerX, centerY)

	if dist > radius+0.5 {
		return " "
	}
	if col == centerX && row == centerY {
		return styleCenter.Render("+")
	}
	if math.Abs(dist-collectR) < 0.6 && collectR >= 1.5 {
		return styleCollR.Render(string(ringGlyph(angle)))
	}
	if math.Abs(dist-nearR) < 0.7 {
		return styleNearR.Render(string(ringGlyph(angle)))
	}
	if math.Abs(dist-radius) < 0.8 {
		return styleOuter.Render(string(ringGlyph(angle)))
	}

	if i := sweep.Intensity(angle); i > 0 {
		return lipgloss.NewStyle().Foreground(sweepShade(i)).Render(".")
	}
	return styleDot.Render(".")
}

func sweepShade(intensity float64) lipgloss.Color {
	switch {
	case intensity > 0.8:
		return lipgloss.Color("#FFD75F")
	case intensity > 0.5:
		return lipgloss.Color("#D7AF5F")
	case intensity > 0.3:
		return lipgloss.Color("#AF8700")
	default:
		return lipgloss.Color("#585123")
	}
}

// RenderLegend produces the radar legend line.
func RenderLegend(width int) string {
	legend := styleCoin.Render("$ coin") +
		"  " + styleTarget.Render("* target") +
		"  " + styleLockDev.Render("red = locked")

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
