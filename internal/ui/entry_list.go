package ui

import (
	"fmt"
	"strconv"
	"strings"

	"srboli-wheel/internal/wheel"
)

// InputMode says what the prompt line is collecting.
type InputMode int

const (
	InputNone InputMode = iota
	InputAdd
	InputImport
)

// InputState holds the prompt line shown at the top of the entry list.
type InputState struct {
	Mode   InputMode
	Buffer string
}

// Active reports whether keystrokes go to the prompt.
func (s InputState) Active() bool { return s.Mode != InputNone }

// RenderEntryList renders the entry panel: prompt, entries with the cursor,
// and the recent winners. The prompt stays fixed at the top; entries scroll.
func RenderEntryList(st wheel.WheelState, width, height, cursor int, history []string, input InputState) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("ENTRIES [%d]", len(st.Entries)))
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))
	headerLines := []string{title, separator, renderPrompt(input, innerW)}

	// history block at the bottom
	var histLines []string
	if len(history) > 0 {
		histLines = append(histLines, separator, StylePanelTitle.Render("RECENT"))
		for i := len(history) - 1; i >= 0; i-- {
			histLines = append(histLines, StyleHelp.Render(" "+truncRaw(history[i], innerW-1)))
		}
	}

	innerH := height - 2
	if innerH < len(headerLines)+1 {
		innerH = len(headerLines) + 1
	}
	entrySpace := innerH - len(headerLines) - len(histLines)
	if entrySpace < 3 {
		// history gives way to entries on small terminals
		histLines = nil
		entrySpace = innerH - len(headerLines)
	}
	if entrySpace < 1 {
		entrySpace = 1
	}

	var lines []string
	if len(st.Entries) == 0 {
		lines = append(lines, "", StyleHelp.Render(" No entries..."), StyleHelp.Render(" Press A to add"))
	} else {
		// viewport start so the cursor is always visible
		viewStart := 0
		if cursor >= entrySpace {
			viewStart = cursor - entrySpace + 1
		}
		for i := viewStart; i < len(st.Entries) && len(lines) < entrySpace; i++ {
			lines = append(lines, renderEntry(st, i, i == cursor, innerW))
		}
	}
	if len(lines) > entrySpace {
		lines = lines[:entrySpace]
	}
	for len(lines) < entrySpace {
		lines = append(lines, "")
	}

	all := make([]string, 0, innerH)
	all = append(all, headerLines...)
	all = append(all, lines...)
	all = append(all, histLines...)
	if len(all) > innerH {
		all = all[:innerH]
	}

	rendered := StylePanelBorder.Width(width - 2).Height(innerH).Render(strings.Join(all, "\n"))

	// lipgloss Height() only sets a minimum; clamp overflow.
	outLines := strings.Split(rendered, "\n")
	if len(outLines) > height {
		outLines = outLines[:height]
	}
	return strings.Join(outLines, "\n")
}

func renderEntry(st wheel.WheelState, i int, isCursor bool, maxW int) string {
	e := st.Entries[i]
	isWinner := st.Highlighted && st.HighlightIndex == i

	mark := "  "
	if isCursor {
		mark = "> "
	}
	star := " "
	if isWinner {
		star = "*"
	}
	weight := "(w=" + strconv.FormatFloat(e.Weight, 'g', 4, 64) + ")"

	nameMax := maxW - len(weight) - 5
	if nameMax < 4 {
		nameMax = 4
	}
	name := truncRaw(e.Name, nameMax)

	if isCursor {
		raw := fmt.Sprintf("%s%s %s %s", mark, star, name, weight)
		return StyleCursorRow.Render(padRaw(raw, maxW))
	}
	nameSty := StyleEntryName
	if isWinner {
		nameSty = StyleWinner
	}
	return fmt.Sprintf("%s%s %s %s", mark, StyleWinner.Render(star), nameSty.Render(name), StyleEntryWeight.Render(weight))
}

func renderPrompt(in InputState, maxW int) string {
	switch in.Mode {
	case InputAdd:
		return StyleInputActive.Render(promptLine(" add> ", in.Buffer, maxW))
	case InputImport:
		return StyleInputActive.Render(promptLine(" file> ", in.Buffer, maxW))
	}
	return StyleHelp.Render(truncRaw(" [j/k] move  [A]dd  [I]mport", maxW))
}

// promptLine keeps the end of a long buffer visible, where the caret is.
func promptLine(label, buf string, maxW int) string {
	r := []rune(buf + "_")
	room := maxW - len([]rune(label))
	if room < 1 {
		room = 1
	}
	if len(r) > room {
		r = r[len(r)-room:]
	}
	return label + string(r)
}

// truncRaw cuts s to at most w runes.
func truncRaw(s string, w int) string {
	r := []rune(s)
	if w < 0 {
		w = 0
	}
	if len(r) > w {
		return string(r[:w])
	}
	return s
}

// padRaw pads or truncates s to exactly w runes.
func padRaw(s string, w int) string {
	s = truncRaw(s, w)
	if n := len([]rune(s)); n < w {
		s += strings.Repeat(" ", w-n)
	}
	return s
}
