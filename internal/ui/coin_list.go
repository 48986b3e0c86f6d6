package ui

import (
	"fmt"
	"strings"
)

// CoinRow is one entry in the coin list, already formatted by the caller.
type CoinRow struct {
	Value    string
	Distance string
	Cardinal string
	Target   bool
	Locked   bool
}

// RenderCoinList renders the scrollable list of pool coins, closest
// first, with the cursor row highlighted.
func RenderCoinList(rows []CoinRow, width, height, cursor int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	innerH := height - 2
	if innerH < 3 {
		innerH = 3
	}

	title := StylePanelTitle.Render(fmt.Sprintf("COINS [%d]", len(rows)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	lines := []string{title, separator}

	space := innerH - len(lines)
	if space < 1 {
		space = 1
	}

	if len(rows) == 0 {
		lines = append(lines, "", StyleHelp.Render(" Field is empty."))
	} else {
		viewStart := 0
		if cursor >= space {
			viewStart = cursor - space + 1
		}
		for i := viewStart; i < len(rows) && len(lines) < innerH; i++ {
			lines = append(lines, renderCoinRow(rows[i], innerW, i == cursor))
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

func renderCoinRow(r CoinRow, width int, isCursor bool) string {
	mark := " "
	switch {
	case r.Target && r.Locked:
		mark = StyleLockedMark.Render("*")
	case r.Target:
		mark = StyleTargetMark.Render("*")
	case r.Locked:
		mark = StyleLockedMark.Render("!")
	}

	value := StyleCoinValue.Render(fmt.Sprintf("%-8s", r.Value))
	meta := StyleCoinMeta.Render(fmt.Sprintf("%8s %-3s", r.Distance, r.Cardinal))
	line := fmt.Sprintf(" %s %s %s", mark, value, meta)

	if isCursor {
		return StyleCursorLine.Width(width).Render(line)
	}
	return line
}
