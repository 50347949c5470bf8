package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/tursodatabase/blocks/internal/tetris"
)

const (
	emptyCell = " ."
	blockCell = "[]"
	ghostCell = "::"
)

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#808080"))
	panelStyle  = lipgloss.NewStyle().PaddingLeft(2)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00")).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#404040"))
)

func cellStyle(palette tetris.Palette, cell tetris.Cell) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Color(cell)))
}

// Render draws a snapshot, centered when the terminal size is known
func Render(snapshot tetris.Snapshot, width, height int) string {
	board := frameStyle.Render(renderBoard(snapshot))
	panel := panelStyle.Render(renderPanel(snapshot))
	view := lipgloss.JoinHorizontal(lipgloss.Top, board, panel)

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func renderBoard(snapshot tetris.Snapshot) string {
	cells := snapshot.Cells
	overlay := make([][]string, snapshot.Rows)
	for row := range overlay {
		overlay[row] = make([]string, snapshot.Cols)
	}

	// the falling piece is hidden while paused, like the rest of the game
	if snapshot.Mode == tetris.ModeRunning {
		current := snapshot.Current
		style := cellStyle(snapshot.Palette, current.Cell)
		if snapshot.GhostY > current.Y {
			eachBlock(current.Shape, current.X, snapshot.GhostY, func(x, y int) {
				if inside(snapshot, x, y) && cells[y][x] == tetris.CellEmpty {
					overlay[y][x] = style.Render(ghostCell)
				}
			})
		}
		eachBlock(current.Shape, current.X, current.Y, func(x, y int) {
			if inside(snapshot, x, y) {
				overlay[y][x] = style.Render(blockCell)
			}
		})
	}

	var b strings.Builder
	for y := 0; y < snapshot.Rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < snapshot.Cols; x++ {
			switch {
			case overlay[y][x] != "":
				b.WriteString(overlay[y][x])
			case snapshot.Mode == tetris.ModePaused:
				b.WriteString(emptyStyle.Render(emptyCell))
			case cells[y][x] != tetris.CellEmpty:
				b.WriteString(cellStyle(snapshot.Palette, cells[y][x]).Render(blockCell))
			default:
				b.WriteString(emptyStyle.Render(emptyCell))
			}
		}
	}
	return b.String()
}

func renderPanel(snapshot tetris.Snapshot) string {
	lines := []string{
		titleStyle.Render("NEXT"),
		renderPreview(snapshot),
		"",
		titleStyle.Render("SCORE"),
		humanize.Comma(int64(snapshot.Score)),
		"",
		titleStyle.Render("LINES"),
		humanize.Comma(int64(snapshot.Lines)),
		"",
		titleStyle.Render("LEVEL"),
		fmt.Sprint(snapshot.Level()),
		"",
	}

	switch snapshot.Mode {
	case tetris.ModePaused:
		lines = append(lines, bannerStyle.Render("PAUSED"), helpStyle.Render("p resume  q quit"))
	case tetris.ModeGameOver:
		lines = append(lines, bannerStyle.Render("GAME OVER"), helpStyle.Render("r new game  q quit"))
	default:
		lines = append(lines,
			helpStyle.Render("←/→ move  ↓ drop"),
			helpStyle.Render("↑ rotate  space slam"),
			helpStyle.Render("p pause  q quit"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderPreview draws the next piece in a 4x2 box
func renderPreview(snapshot tetris.Snapshot) string {
	next := snapshot.Next
	style := cellStyle(snapshot.Palette, next.Cell)

	rows := make([]string, 2)
	for y := range rows {
		var b strings.Builder
		for x := 0; x < 4; x++ {
			if y < len(next.Shape) && x < len(next.Shape[y]) && next.Shape[y][x] {
				b.WriteString(style.Render(blockCell))
			} else {
				b.WriteString("  ")
			}
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func eachBlock(shape [][]bool, x, y int, fn func(x, y int)) {
	for j, row := range shape {
		for i, filled := range row {
			if filled {
				fn(x+i, y+j)
			}
		}
	}
}

func inside(snapshot tetris.Snapshot, x, y int) bool {
	return x >= 0 && x < snapshot.Cols && y >= 0 && y < snapshot.Rows
}
