package model

import (
	"fmt"
	"io"
)

// ANSI erase-display sequence
const clearScreenSeq = "\x1b[2J"

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the board followed by its generation and population line
func (r *TerminalRenderer) Display(b *Board) error {
	_, err := fmt.Fprintf(r.Out, "%s\nGeneration %d : %d alive cells\n",
		b.Render(), b.Generation(), b.CountAliveCells())
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, clearScreenSeq)
	return err
}
