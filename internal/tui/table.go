package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/msto63/unitx/foundation/units/si"
)

// Column indexes of the unit table
const (
	colKind = iota
	colName
	colSymbol
	colDimension
	colRatio
)

// UnitRows converts catalog entries to table rows
func UnitRows(entries []si.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Kind,
			e.Unit.Name(),
			e.Unit.Symbol(),
			e.Unit.Dimension().String(),
			e.Unit.Ratio().String(),
		})
	}
	return rows
}

// RenderUnits renders catalog entries as a bordered table
func (t *Theme) RenderUnits(entries []si.Entry) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(t.Border).
		Headers("KIND", "NAME", "SYMBOL", "DIMENSION", "RATIO").
		Rows(UnitRows(entries)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return t.Header
			case col == colSymbol:
				return t.Symbol
			default:
				return t.Cell
			}
		})
	return tbl.Render()
}
