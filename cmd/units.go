package cmd

import (
	"fmt"
	"strings"

	"dltime-cli/cmd/utils"
	"dltime-cli/internal/calc"
	"dltime-cli/internal/tui"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the supported size and speed units",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderUnitTables(terminalWidth(0)))
		return err
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

// renderUnitTables renders the size and speed tables. A width of 0 lets the
// tables size themselves.
func renderUnitTables(width int) string {
	sizeRows := make([][]string, 0, len(calc.FileSizeUnits))
	for i, u := range calc.FileSizeUnits {
		sizeRows = append(sizeRows, []string{
			string(u),
			fmt.Sprintf("8 × 1024^%d", i+1),
			humanize.Comma(int64(u.Bits())),
			utils.FormatBits(u.Bits()),
		})
	}

	speedRows := make([][]string, 0, len(calc.SpeedUnits))
	for i, u := range calc.SpeedUnits {
		speedRows = append(speedRows, []string{
			string(u),
			fmt.Sprintf("1000^%d", i+1),
			humanize.Comma(int64(u.BitsPerSecond())),
			utils.FormatBitRate(u.BitsPerSecond()),
		})
	}

	var b strings.Builder
	b.WriteString(tui.HeaderStyle.Render("File size units") + "\n")
	b.WriteString(unitTable(width, []string{"UNIT", "MULTIPLIER", "BITS", "BYTES"}, sizeRows) + "\n\n")
	b.WriteString(tui.HeaderStyle.Render("Speed units") + "\n")
	b.WriteString(unitTable(width, []string{"UNIT", "MULTIPLIER", "BITS/S", "RATE"}, speedRows))
	return b.String()
}

func unitTable(width int, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tui.DimmedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Inherit(tui.LabelStyle)
			case col == 0:
				return style.Inherit(tui.FocusedStyle)
			}
			return style
		})
	if width > 0 {
		t = t.Width(min(width, 72))
	}
	return t.String()
}
