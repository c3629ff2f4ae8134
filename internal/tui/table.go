package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/breakeven/internal/editor"
)

var tableHeaders = []string{"Name", "Rate (kWh/$)", "Upfront ($)", "Average Wattage (W)"}

// columnWidths gives the name column a tenth of the width and splits the
// rest evenly between the three numeric columns.
func columnWidths(width int) []int {
	// One space between columns
	usable := width - (len(tableHeaders) - 1)
	if usable < len(tableHeaders) {
		usable = len(tableHeaders)
	}
	name := usable / 10
	if name < 4 {
		name = 4
	}
	rest := usable - name
	third := rest / 3
	return []int{name, third, third, rest - 2*third}
}

// renderTable draws the device list, one row per device in its color.
func renderTable(devices []editor.DeviceView, width, height int) string {
	widths := columnWidths(width - 2)

	var lines []string
	lines = append(lines, TableHeaderStyle.Render(joinCells(tableHeaders, widths)))

	for _, dv := range devices {
		d := dv.Device
		cells := []string{
			d.Name,
			formatNumber(d.ElectricityRate),
			formatNumber(d.InitialCost),
			formatNumber(d.AverageWattage.Watts),
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color.Hex()))
		lines = append(lines, style.Render(joinCells(cells, widths)))
	}

	return RenderTitledBox("", strings.Join(lines, "\n"), width, height, BorderColor)
}

func joinCells(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = pad(cell, widths[i])
	}
	return strings.Join(padded, " ")
}
