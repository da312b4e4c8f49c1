package core

// Command is a single positioned text fragment to draw.
type Command struct {
	Col   int
	Row   int
	Text  string
	Color Color
}

// Batch is an ordered buffer of draw commands accumulated during one tick.
// Later commands overdraw earlier ones, so enqueue order is preserved on flush.
type Batch struct {
	cmds []Command
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{cmds: make([]Command, 0, 32)}
}

// Add enqueues a draw command.
func (b *Batch) Add(col, row int, text string, color Color) {
	b.cmds = append(b.cmds, Command{Col: col, Row: row, Text: text, Color: color})
}

// Len returns the number of pending commands.
func (b *Batch) Len() int {
	return len(b.cmds)
}

// Commands returns the pending commands in enqueue order.
func (b *Batch) Commands() []Command {
	return b.cmds
}

// Reset drops all pending commands without drawing them.
func (b *Batch) Reset() {
	b.cmds = b.cmds[:0]
}

// Flush draws every pending command to dst in order and clears the batch.
// A command starting left of column 0 loses its first |col| characters
// and is drawn at column 0.
func (b *Batch) Flush(dst Surface) {
	for _, c := range b.cmds {
		col, text := Clip(c.Col, c.Text)
		if text == "" {
			continue
		}
		dst.MoveCursor(col, c.Row)
		dst.SetColor(c.Color)
		dst.WriteText(text)
	}
	b.Reset()
}

// Clip applies left-edge clipping to a text fragment.
func Clip(col int, text string) (int, string) {
	if col >= 0 {
		return col, text
	}
	runes := []rune(text)
	drop := Abs(col)
	if drop >= len(runes) {
		return 0, ""
	}
	return 0, string(runes[drop:])
}
