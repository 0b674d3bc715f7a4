package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-scroller/internal/storage"
)

// Leaderboard column widths
const (
	rankWidth  = 5
	nameWidth  = storage.MaxNameLength + 1
	scoreWidth = 8
	levelWidth = 6
)

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	boardEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)

	boardPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("3")).
				MarginTop(1)
)

// newBoardTable creates the leaderboard table for records.
func newBoardTable(records []storage.Record) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: scoreWidth},
		{Title: "Level", Width: levelWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(boardRows(records)),
		table.WithFocused(false),
		table.WithHeight(storage.MaxRecords+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No row is selected on a read-only board
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

func boardRows(records []storage.Record) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		rows[i] = table.Row{
			fmt.Sprintf("%d.", i+1),
			r.Name,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
		}
	}
	return rows
}

// renderBoard draws the leaderboard screen centered in width x height.
func renderBoard(records []storage.Record, width, height int) string {
	var b strings.Builder
	b.WriteString(boardTitleStyle.Render("Top 10 High Scores"))
	b.WriteString("\n")

	if len(records) == 0 {
		b.WriteString(boardFrameStyle.Render(boardEmptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")))
	} else {
		b.WriteString(boardFrameStyle.Render(newBoardTable(records).View()))
	}
	b.WriteString("\n")
	b.WriteString(boardPromptStyle.Render("Press Enter to return to the main menu"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
