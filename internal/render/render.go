// Package render draws cards, boards and sets for a terminal.
//
// A card is drawn as its glyph, picked by the (shape, shading) pair, repeated
// once per count, padded to three cells and wrapped in brackets. The glyph is
// colored red, green or purple according to the card's color.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"setgame/internal/game/card"
	"setgame/internal/game/finder"
)

// Color modes accepted by WithColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultColumns is how many cards a board row holds.
const DefaultColumns = 4

const cellWidth = 3

// glyphs[shape][shading]
var glyphs = [3][3]string{
	{"■", "▥", "□"}, // diamond: solid, striped, open
	{"▲", "◬", "△"}, // squiggle
	{"●", "◍", "○"}, // oval
}

type Renderer struct {
	out     io.Writer
	columns int
	palette [3]*color.Color
}

type Option func(*Renderer)

func WithColumns(n int) Option {
	return func(r *Renderer) { r.columns = n }
}

// WithColorMode forces color on ("always") or off ("never"). "auto" leaves the
// decision to fatih/color, which disables color when stdout is not a terminal
// or NO_COLOR is set.
func WithColorMode(mode string) Option {
	return func(r *Renderer) {
		for _, c := range r.palette {
			switch mode {
			case ColorAlways:
				c.EnableColor()
			case ColorNever:
				c.DisableColor()
			}
		}
	}
}

func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:     out,
		columns: DefaultColumns,
		palette: [3]*color.Color{
			color.New(color.FgRed),
			color.New(color.FgGreen),
			color.New(color.FgMagenta),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Glyph returns the uncolored, padded symbol run for c.
func Glyph(c card.Card) string {
	symbol := glyphs[c.Shape()][c.Shading()]
	repr := strings.Repeat(symbol, int(c.Count())+1)
	if pad := cellWidth - utf8.RuneCountInString(repr); pad > 0 {
		repr += strings.Repeat(" ", pad)
	}
	return repr
}

// Card returns c ready for display, e.g. "[●● ]" in green.
func (r *Renderer) Card(c card.Card) string {
	return "[" + r.palette[c.Color()].Sprint(Glyph(c)) + "]"
}

// Board writes the cards row by row.
func (r *Renderer) Board(board card.Pile) error {
	var sb strings.Builder
	for i, c := range board {
		sb.WriteString(r.Card(c))
		if r.columns > 0 && (i+1)%r.columns == 0 {
			sb.WriteByte('\n')
		}
	}
	if len(board) > 0 && (r.columns <= 0 || len(board)%r.columns != 0) {
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(r.out, sb.String())
	return err
}

// Set writes the three cards of t on one line.
func (r *Renderer) Set(t finder.Triple) error {
	_, err := fmt.Fprintf(r.out, "%s%s%s\n", r.Card(t.Cards[0]), r.Card(t.Cards[1]), r.Card(t.Cards[2]))
	return err
}

// Sets writes every set yielded by seq and returns how many were written.
func (r *Renderer) Sets(seq iter.Seq[finder.Triple]) (int, error) {
	n := 0
	for t := range seq {
		if err := r.Set(t); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// JSON writes v as indented JSON followed by a newline.
func JSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
