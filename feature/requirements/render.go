package requirements

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: "#DA7756"})
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
)

// NothingToClaimMessage is shown when no owned character has an unclaimed set.
const NothingToClaimMessage = "No gift sets left to claim."

// Render formats a result as terminal tables: furnishings to craft,
// furnishings to buy and the material shortfall.
func Render(res *Result) string {
	if res.NothingToClaim {
		return mutedStyle.Render(NothingToClaimMessage) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Eligible sets") + "\n")
	b.WriteString(strings.Join(res.EligibleSets, ", ") + "\n\n")

	section(&b, "Craft", []string{"Furnishing", "Amount"}, furnishingRows(res.Craft))
	section(&b, "Buy", []string{"Furnishing", "Amount"}, furnishingRows(res.Buy))

	materials := make([][]string, 0, len(res.Materials))
	for _, m := range res.Materials {
		materials = append(materials, []string{m.Name, strconv.Itoa(m.Needed), strconv.Itoa(m.Owned), strconv.Itoa(m.Shortfall)})
	}
	section(&b, "Materials", []string{"Material", "Needed", "Owned", "Shortfall"}, materials)

	return b.String()
}

func furnishingRows(needs []FurnishingNeed) [][]string {
	rows := make([][]string, 0, len(needs))
	for _, n := range needs {
		rows = append(rows, []string{n.Name, strconv.Itoa(n.Amount)})
	}
	return rows
}

func section(b *strings.Builder, title string, headers []string, rows [][]string) {
	b.WriteString(titleStyle.Render(title) + "\n")
	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("nothing") + "\n\n")
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	b.WriteString(t.String() + "\n\n")
}
