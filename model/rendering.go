package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "
)

// TerminalRenderer draws a grid as text, two columns per cell
type TerminalRenderer struct{}

// Display renders the grid to w, one line per row
func (r *TerminalRenderer) Display(w io.Writer, g Grid) error {
	bw := bufio.NewWriter(w)
	for _, row := range g {
		for _, c := range row {
			if c.IsLive() {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}
