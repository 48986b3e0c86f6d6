package ui

import (
	"fmt"
	"math"
	"strings"
)

// TargetInfo carries everything the target panel displays, formatted by
// the caller so this package stays presentation-only.
type TargetInfo struct {
	HasTarget   bool
	Value       string
	Distance    string
	Bearing     float64
	Cardinal    string
	Relative    *float64 // nil when no compass heading this tick
	Zone        string
	Collectible bool
	Locked      bool
	Spark       []float64
}

// RenderTargetPanel renders the current-target panel: value, range and
// direction, zone badge, and the approach sparkline.
func RenderTargetPanel(width, height int, info TargetInfo) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2
	if innerH < 3 {
		innerH = 3
	}

	lines := []string{
		StylePanelTitle.Render("TARGET"),
		StyleSeparator.Render(strings.Repeat("-", innerW)),
	}

	if !info.HasTarget {
		lines = append(lines, "",
			StyleHelp.Render(" No coin targeted."),
			StyleHelp.Render(" Keep walking..."))
	} else {
		value := " " + StyleCoinValue.Render(info.Value)
		if info.Locked {
			value += "  " + StyleLockedMark.Render("LOCKED")
		}
		lines = append(lines, value)
		lines = append(lines, " "+StyleCoinMeta.Render(fmt.Sprintf("%s %s", info.Distance, info.Cardinal)))
		lines = append(lines, " "+renderTurn(info.Relative))
		lines = append(lines, " "+renderZoneBadge(info.Zone, info.Collectible))
		if info.Collectible && !info.Locked {
			lines = append(lines, " "+StyleZoneCollect.Render(">> SPACE to collect <<"))
		}
		if spark := sparkline(info.Spark, innerW-2); spark != "" {
			lines = append(lines, "", " "+StyleCoinMeta.Render(spark))
		}
	}

	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}

	return StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(lines, "\n"))
}

func renderTurn(relative *float64) string {
	if relative == nil {
		return StyleHelp.Render("compass unavailable")
	}
	r := *relative
	switch {
	case math.Abs(r) < 10:
		return StyleTargetMark.Render("^ straight ahead")
	case r < 0:
		return StyleCoinMeta.Render(fmt.Sprintf("< turn %.0f deg left", -r))
	default:
		return StyleCoinMeta.Render(fmt.Sprintf("> turn %.0f deg right", r))
	}
}

func renderZoneBadge(zone string, collectible bool) string {
	switch {
	case collectible:
		return StyleZoneCollect.Render("[" + strings.ToUpper(zone) + "]")
	case zone == "Near":
		return StyleZoneNear.Render("[NEAR]")
	default:
		return StyleZoneFar.Render("[" + strings.ToUpper(zone) + "]")
	}
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// sparkline draws the recent distance history, taller bars meaning
// farther away, so a good approach reads as a downhill slope.
func sparkline(vals []float64, width int) string {
	if len(vals) < 2 || width < 2 {
		return ""
	}
	if len(vals) > width {
		vals = vals[len(vals)-width:]
	}

	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	var sb strings.Builder
	for _, v := range vals {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparkRunes)-1))
		}
		sb.WriteRune(sparkRunes[idx])
	}
	return sb.String()
}
