package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	messageStyle = lipgloss.NewStyle().Padding(1, 2)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	deptStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 2)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3)
)

const maxVisibleBuildings = 12

func (m Model) View() string {
	var body, footer string
	switch m.screen {
	case screenAcknowledge:
		body = m.viewAcknowledge()
		footer = renderHelp(m.keys.acknowledgeHelp())
	case screenNameEntry:
		body = m.viewNameEntry()
		footer = renderHelp(m.keys.nameHelp())
	case screenSelection:
		body = m.viewSelection()
		footer = renderHelp(m.keys.selectionHelp())
	default:
		body = "Enrollment complete. Thank you!"
	}
	if m.saving {
		body = "Saving enrollment..."
	}
	if m.hint != "" {
		body += "\n\n" + hintStyle.Render(m.hint)
	}
	return m.place(boxStyle.Render(body), m.renderFooter(footer))
}

func (m Model) viewAcknowledge() string {
	title := titleStyle.Render("Workstation Enrollment")
	msg := messageStyle.Render(wrap(acknowledgeMessage, 52))
	return title + "\n" + msg + "\n" + "Press Enter to acknowledge and continue."
}

func (m Model) viewNameEntry() string {
	title := titleStyle.Render("Your Name")
	return fmt.Sprintf("%s\n\nFirst Name:\n%s\n\nLast Name:\n%s",
		title, m.firstName.View(), m.lastName.View())
}

func (m Model) viewSelection() string {
	title := titleStyle.Render("Department & Building")

	dept := fmt.Sprintf("◀ %s ▶", deptStyle.Render(m.Department()))
	out := title + "\n\nSelect your department:\n" + dept + "\n\nSelect your building:\n"

	filter := m.query
	if filter == "" {
		filter = "(type to filter)"
	}
	out += "filter: " + filter + "\n"

	if len(m.filtered) == 0 {
		out += "  (no buildings match)"
		return out
	}

	top, end := listWindow(m.buildingCursor, len(m.filtered), maxVisibleBuildings)
	for i := top; i < end; i++ {
		prefix := "  "
		if i == m.buildingCursor {
			prefix = cursorStyle.Render("> ")
		}
		out += prefix + m.filtered[i] + "\n"
	}
	if end < len(m.filtered) {
		out += fmt.Sprintf("  … %d more", len(m.filtered)-end)
	}
	return strings.TrimRight(out, "\n")
}

// listWindow keeps the cursor inside a fixed-height scrolling window.
func listWindow(cursor, total, visible int) (int, int) {
	if total <= visible {
		return 0, total
	}
	top := cursor - visible/2
	if top < 0 {
		top = 0
	}
	if top > total-visible {
		top = total - visible
	}
	return top, top + visible
}

// place centers the active screen in the terminal with the footer pinned to
// the last row, mirroring the centered fullscreen window of the kiosk.
func (m Model) place(body, footer string) string {
	if m.width == 0 || m.height == 0 {
		return body + "\n" + footer
	}
	contentHeight := m.height - 1
	if contentHeight < 1 {
		contentHeight = 1
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, body)
	return main + "\n" + footer
}

func (m Model) renderFooter(text string) string {
	if m.width == 0 {
		return footerStyle.Render(text)
	}
	flat := strings.ReplaceAll(text, "\n", " ")
	return footerStyle.Render(padRight(flat, m.width-footerStyle.GetHorizontalPadding()))
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, boldKey(help.Key)+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func boldKey(text string) string {
	if text == "" {
		return ""
	}
	return "\x1b[1m" + text + "\x1b[22m"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func wrap(s string, width int) string {
	words := strings.Fields(s)
	var lines []string
	line := ""
	for _, w := range words {
		if line == "" {
			line = w
			continue
		}
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
