package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"vfstree/internal/domain"
	"vfstree/internal/state"
	"vfstree/internal/traverse"
)

type uiStyles struct {
	headerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
	statusStyle lipgloss.Style
	warnStyle   lipgloss.Style
	cursorStyle lipgloss.Style
	dirStyle    lipgloss.Style
	panelBorder lipgloss.Style
}

func stylesFor(model Model) uiStyles {
	if strings.ToLower(model.state.Prefs.Theme) == "light" {
		return uiStyles{
			headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
			mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
			warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
			cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("90")).Bold(true),
			dirStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
			panelBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		}
	}
	return uiStyles{
		headerStyle: lipgloss.NewStyle().Bold(true),
		mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		statusStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		cursorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		dirStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		panelBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (model Model) View() string {
	styles := stylesFor(model)
	if model.showHelp {
		return renderHelpView(model, styles)
	}

	body := renderBody(model, styles)
	footer := renderFooter(model, styles)
	return strings.Join([]string{body, footer}, "\n")
}

func renderBody(model Model, styles uiStyles) string {
	rows := model.state.VisibleNodes()
	bodyHeight := model.listHeight()
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	leftWidth, rightWidth, showRight := splitPanels(model.width)
	left := renderTreePanel(model, styles, rows, bodyHeight, leftWidth)
	if !showRight {
		return left
	}
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render("│")
	right := renderDetailPanel(model, styles, rightWidth, bodyHeight)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, sep, right)
}

func renderFooter(model Model, styles uiStyles) string {
	statusLine := trimStatus(model.status, model.width)
	statusStyle := styles.mutedStyle
	if strings.Contains(strings.ToLower(model.status), "no directory") {
		statusStyle = styles.warnStyle
	}
	statusLine = statusStyle.Render(statusLine)

	files, dirs := traverse.Count(model.state.Root)
	treeInfo := fmt.Sprintf("Tree: %d files, %d dirs, %s", files, dirs, formatSize(traverse.TotalSize(model.state.Root)))
	sortInfo := fmt.Sprintf("Order: %s", strings.ToUpper(string(model.state.Prefs.SortMode)))
	filterInfo := ""
	if model.state.Query != "" {
		filterInfo = fmt.Sprintf("  Filter[%s]", model.state.Query)
	}
	left := fmt.Sprintf("%s  %s%s", treeInfo, sortInfo, filterInfo)
	keys := "↑/↓ move  enter expand  E all  c collapse  o order  / locate  f filter  x clear  ? help  q quit"
	if model.inputMode != "" {
		keys = "type name  enter confirm  esc cancel"
	}
	footerLine := padLine(left, keys, model.width)
	return strings.Join([]string{statusLine, styles.mutedStyle.Render(footerLine)}, "\n")
}

func renderTreePanel(model Model, styles uiStyles, rows []state.Row, height, width int) string {
	if width < 20 {
		width = 20
	}
	contentWidth := maxInt(width-2, 10)
	headerLine := padLine(styles.headerStyle.Render("vfstree")+"  "+breadcrumbs(model.state.Root.Name()), styles.statusStyle.Render(strings.ToUpper(string(model.state.Prefs.SortMode))), contentWidth)
	listHeight := height - 1
	if listHeight < 1 {
		listHeight = 1
	}
	if len(rows) == 0 {
		lines := []string{headerLine, "No rows match the filter - press x"}
		for len(lines) < height {
			lines = append(lines, "")
		}
		return styles.panelBorder.Width(contentWidth).Render(strings.Join(lines, "\n"))
	}
	start := clamp(model.viewTop, 0, maxInt(len(rows)-1, 0))
	end := start + listHeight
	if end > len(rows) {
		end = len(rows)
	}

	lines := make([]string, 0, height)
	lines = append(lines, headerLine)
	sizeWidth := 9
	for index := start; index < end; index++ {
		row := rows[index]
		node := row.Node
		indent := strings.Repeat("  ", row.Depth)
		marker := rowMarker(model, row)
		name := node.Name()
		if node.IsDir() {
			name += "/"
		}
		lineSize := fmt.Sprintf("%*s", sizeWidth, formatSize(rowSize(node)))
		plain := fmt.Sprintf("%s %s%s%s", lineSize, indent, marker, name)
		if index == model.state.Cursor {
			lines = append(lines, styles.cursorStyle.Render(plain))
			continue
		}
		if node.IsDir() {
			plain = fmt.Sprintf("%s %s%s%s", lineSize, indent, marker, styles.dirStyle.Render(name))
		}
		lines = append(lines, plain)
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	content := strings.Join(lines, "\n")
	return styles.panelBorder.Width(contentWidth).Render(content)
}

func renderDetailPanel(model Model, styles uiStyles, width, height int) string {
	row := model.state.CurrentRow()
	contentWidth := maxInt(width-2, 10)
	if row == nil {
		return styles.panelBorder.Width(contentWidth).Render("No selection")
	}
	node := row.Node
	lines := []string{
		styles.headerStyle.Render("Path"),
		breadcrumbs(row.Path),
		"",
		styles.headerStyle.Render("Kind"),
		node.Kind().String(),
		"",
		styles.headerStyle.Render("Size"),
	}
	if node.IsFile() {
		lines = append(lines, formatSize(node.Size()))
	} else {
		files, dirs := traverse.Count(node)
		lines = append(lines,
			fmt.Sprintf("Total : %s", formatSize(traverse.TotalSize(node))),
			fmt.Sprintf("Files : %d", files),
			fmt.Sprintf("Dirs  : %d", dirs-1),
		)
		extremes := traverse.LargestSmallest(node)
		if len(extremes) > 0 {
			lines = append(lines, "", styles.headerStyle.Render("Extremes"))
			smallest := extremes[0]
			largest := extremes[len(extremes)-1]
			lines = append(lines,
				fmt.Sprintf("Smallest: %s (%s)", smallest.Name(), formatSize(smallest.Size())),
				fmt.Sprintf("Largest : %s (%s)", largest.Name(), formatSize(largest.Size())),
			)
		}
	}

	content := strings.Join(lines, "\n")
	content = lipgloss.NewStyle().Width(contentWidth).Height(height).Render(content)
	return styles.panelBorder.Width(contentWidth).Render(content)
}

func renderHelpView(model Model, styles uiStyles) string {
	bindings := []key.Binding{
		model.keys.Up,
		model.keys.Down,
		model.keys.Top,
		model.keys.Bottom,
		model.keys.Enter,
		model.keys.ExpandAll,
		model.keys.CollapseAll,
		model.keys.Sort,
		model.keys.Locate,
		model.keys.Filter,
		model.keys.ClearFilter,
		model.keys.Help,
		model.keys.Quit,
	}

	lines := []string{styles.headerStyle.Render("vfstree Help"), ""}
	lines = append(lines, styles.headerStyle.Render("Navigation"))
	lines = append(lines, "↑/↓ move cursor", "g/G jump to top/bottom", "enter expand/collapse", "E expand all", "c collapse to root")
	lines = append(lines, "", styles.headerStyle.Render("Views"))
	lines = append(lines, "o cycle child order (tree, size, name)", "f filter rows by name", "x clear filter")
	lines = append(lines, "", styles.headerStyle.Render("Search"))
	lines = append(lines, "/ locate the directory containing a name", "first pre-order hit wins")
	lines = append(lines, "", styles.headerStyle.Render("Keys"))
	for _, binding := range bindings {
		keysLabel := strings.Join(binding.Keys(), ", ")
		lines = append(lines, fmt.Sprintf("%-18s %s", keysLabel, binding.Help().Desc))
	}
	lines = append(lines, "", "Press ? to close help")
	content := strings.Join(lines, "\n")
	width := model.width
	if width <= 0 {
		width = 80
	}
	return styles.panelBorder.Width(maxInt(width-2, 10)).Render(content)
}

func rowMarker(model Model, row state.Row) string {
	if !row.Node.IsDir() {
		return "  "
	}
	if model.state.Expanded[row.Path] {
		return "▾ "
	}
	return "▸ "
}

// rowSize mirrors the state package's display ordering: directories
// show their subtree total, files their own size.
func rowSize(node domain.Node) int64 {
	if node.IsDir() {
		return traverse.TotalSize(node)
	}
	return node.Size()
}

func breadcrumbs(path string) string {
	parts := strings.Split(path, "/")
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	if len(kept) == 0 {
		return "/"
	}
	return strings.Join(kept, " › ")
}

func padLine(left, right string, width int) string {
	if width <= 0 {
		return left
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", space) + right
}

func splitPanels(width int) (int, int, bool) {
	if width < 80 {
		return width, 0, false
	}
	left := int(float64(width) * 0.6)
	if left < 40 {
		left = 40
	}
	right := width - left - 1
	if right < 30 {
		return width, 0, false
	}
	return left, right, true
}

func formatSize(size int64) string {
	const unit = 1000
	if size < unit {
		return fmt.Sprintf("%dB", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}
	value := float64(size) / float64(div)
	units := []string{"KB", "MB", "GB", "TB", "PB", "EB"}
	return fmt.Sprintf("%.1f%s", value, units[exp])
}

func trimStatus(message string, width int) string {
	if width <= 0 {
		return message
	}
	max := width - 4
	if max <= 0 || len(message) <= max {
		return message
	}
	return message[:max] + "..."
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
