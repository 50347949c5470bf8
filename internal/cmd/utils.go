package cmd

import (
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/tursodatabase/blocks/internal"
)

func emph(s string) string {
	return internal.Emph(s)
}

func printTable(header []string, data [][]string) {
	renderTable(os.Stdout, header, data)
}

func renderTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)

	table.SetHeader(header)
	table.SetHeaderLine(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(true)

	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetColumnSeparator("  ")
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("     ")

	table.AppendBulk(data)

	table.Render()
}
