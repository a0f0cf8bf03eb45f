package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/upwords-go/internal/model"
)

// heightStyles shade a tile by how tall its stack is
var heightStyles = map[int]lipgloss.Style{
	1: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("24")),
	2: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("30")),
	3: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("142")),
	4: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("208")),
	5: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("160")),
}

var (
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	centreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238"))
)

func isCentre(row, col int) bool {
	mid := model.BoardSize / 2
	return (row == mid-1 || row == mid) && (col == mid-1 || col == mid)
}

// renderCell draws one square as three columns: letter then stack height
func renderCell(cell model.Cell, row, col int) string {
	if cell.IsEmpty() {
		if isCentre(row, col) {
			return centreStyle.Render(" + ")
		}
		return emptyStyle.Render(" . ")
	}
	style, ok := heightStyles[cell.Height]
	if !ok {
		style = heightStyles[model.MaxHeight]
	}
	return style.Render(fmt.Sprintf("%c%d ", cell.Letter, cell.Height))
}

// RenderBoard draws the board with row and column numbers
func RenderBoard(b model.Board) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := range model.BoardSize {
		sb.WriteString(headerStyle.Render(fmt.Sprintf(" %d ", col)))
	}
	sb.WriteString("\n")

	for row := range model.BoardSize {
		sb.WriteString(headerStyle.Render(fmt.Sprintf(" %d ", row)))
		for col := range model.BoardSize {
			sb.WriteString(renderCell(b[row][col], row, col))
		}
		if row < model.BoardSize-1 {
			sb.WriteString("\n")
		}
	}

	return borderStyle.Render(sb.String())
}

// RenderRack draws tiles as a row of height-1 squares
func RenderRack(rack string) string {
	if rack == "" {
		return emptyStyle.Render("(empty)")
	}
	tiles := make([]string, 0, len(rack))
	for _, r := range rack {
		tiles = append(tiles, heightStyles[1].Render(fmt.Sprintf(" %c ", r)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}
