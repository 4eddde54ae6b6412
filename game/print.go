package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Fprint draws the hexagon row by row, shifting each row so neighbours line up, followed by the
// score line. Colors are emitted only when colored is set.
func (p *Position) Fprint(w io.Writer, colored bool) error {
	au := aurora.NewAurora(colored)

	var b strings.Builder
	b.WriteString("   ")
	for c := 0; c < Diameter; c++ {
		fmt.Fprintf(&b, "%d ", c)
	}
	b.WriteString("\n")

	for r := 0; r < Diameter; r++ {
		indent := r - (Side - 1)
		if indent < 0 {
			indent = -indent
		}
		fmt.Fprintf(&b, "%d  %s", r, strings.Repeat(" ", indent))
		for c := 0; c < Diameter; c++ {
			switch p.Board[r][c] {
			case OutOfBound:
				continue
			case WhiteDisc:
				b.WriteString(au.Bold(au.White("W")).String())
			case BlackDisc:
				b.WriteString(au.Bold(au.Red("B")).String())
			default:
				b.WriteString(au.Faint(".").String())
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "white %d - black %d\n", p.Score[White], p.Score[Black])

	_, err := io.WriteString(w, b.String())
	return err
}

func (p Position) String() string {
	var b strings.Builder
	p.Fprint(&b, false)
	return b.String()
}
