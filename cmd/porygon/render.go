package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	HighlightedColor = lipgloss.Color("33")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightedColor).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)

	titleCaser = cases.Title(language.English)
)

func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// displayName turns table names like "hidden-power" into "Hidden Power".
func displayName(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "-", " "))
}

func renderTable(title string, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(HighlightedColor)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	if width := termWidth(); lipgloss.Width(t.String()) > width {
		t = t.Width(width)
	}
	return titleStyle.Render(title) + "\n" + t.String()
}

func printTable(title string, headers []string, rows [][]string) {
	fmt.Println(renderTable(title, headers, rows))
}

func percent(part, whole uint) string {
	if whole == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)*100/float64(whole))
}
