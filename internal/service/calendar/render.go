package calendar

import (
	"fmt"
	"io"
	"strings"
)

// Render выводит сетку месяца в текстовом виде
// Недоступные дни помечаются "x", выбранный - квадратными скобками, памятные даты - "*"
func Render(w io.Writer, g Grid) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", g.Title)
	for _, wd := range g.Weekdays {
		fmt.Fprintf(&b, " %-4s", wd)
	}
	b.WriteString("\n")

	col := 0
	for i := 0; i < g.Padding; i++ {
		b.WriteString("     ")
		col++
	}

	for _, cell := range g.Days {
		b.WriteString(formatCell(cell))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	for _, cell := range g.Days {
		if cell.Observance != "" {
			fmt.Fprintf(&b, "* %d: %s\n", cell.Day, cell.Observance)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatCell(cell DayCell) string {
	mark := " "
	switch {
	case !cell.Bookable:
		mark = "x"
	case cell.Observance != "":
		mark = "*"
	}

	if cell.Selected {
		return fmt.Sprintf("[%2d]%s", cell.Day, mark)
	}
	return fmt.Sprintf(" %2d %s", cell.Day, mark)
}
