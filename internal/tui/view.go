package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/watchfire-io/runcat/internal/engine"
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	sections := []string{
		renderHeader(m, width),
		artStyle.Render(m.artOrPlaceholder()),
		renderLoad(m),
	}
	if m.showHelp {
		sections = append(sections, renderHelp(m))
	}
	sections = append(sections, renderStatusBar(m, width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) artOrPlaceholder() string {
	if m.art == "" {
		return headerDimStyle.Render("waiting for the first frame...")
	}
	return m.art
}

func renderHeader(m *Model, width int) string {
	theme := m.prefs.Theme.String()
	if m.prefs.Theme != m.effective {
		theme = fmt.Sprintf("%s (%s)", theme, m.effective)
	}
	startup := startupOffStyle.Render("startup off")
	if m.prefs.Startup {
		startup = startupOnStyle.Render("startup on")
	}
	sep := headerDimStyle.Render(" · ")
	line := " " + headerStyle.Render("RunCat") + sep +
		valueStyle.Render(m.prefs.Character.String()) + sep +
		valueStyle.Render(theme) + sep +
		valueStyle.Render(m.prefs.FrameRateCap.String()) + sep +
		startup
	return ansi.Truncate(line, width, "…")
}

func renderLoad(m *Model) string {
	if !m.hasLoad {
		return " " + headerDimStyle.Render(engine.LoadingTooltip)
	}
	rows := []string{
		loadRow("CPU", m.cpuBar.ViewAs(m.load.CPUPercent/100), fmt.Sprintf("%.1f%%", m.load.CPUPercent)),
		loadRow("RAM", m.ramBar.ViewAs(m.load.RAMPercent/100), fmt.Sprintf("%.1f%%", m.load.RAMPercent)),
		loadRow("Disk", m.diskBar.ViewAs(m.load.DiskUsedPercent/100), fmt.Sprintf("%.1f%% used", m.load.DiskUsedPercent)),
		" " + labelStyle.Render("Frame") + intervalStyle.Render(fmt.Sprintf("every %s", m.Interval())),
	}
	return strings.Join(rows, "\n")
}

func loadRow(label, bar, value string) string {
	return " " + labelStyle.Render(label) + bar + " " + valueStyle.Render(value)
}

func renderHelp(m *Model) string {
	h := m.help
	h.ShowAll = true
	return "\n" + lipgloss.NewStyle().PaddingLeft(3).Render(h.View(keys)) + "\n"
}

func renderStatusBar(m *Model, width int) string {
	if m.err != nil {
		return errorBarStyle.Width(width).Render(ansi.Truncate(" "+m.err.Error(), width, "…"))
	}

	hints := make([]string, 0, len(keys.ShortHelp()))
	for _, k := range keys.ShortHelp() {
		h := k.Help()
		hints = append(hints, keyHint(h.Key, h.Desc))
	}
	left := " " + strings.Join(hints, "  ")
	right := hintStyle.Render(m.frameName) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Width(width).Render(ansi.Truncate(left+strings.Repeat(" ", gap)+right, width, ""))
}

func keyHint(k, desc string) string {
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}
