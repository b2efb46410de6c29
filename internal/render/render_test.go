package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setgame/internal/game/card"
	"setgame/internal/game/finder"
)

func TestGlyph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		card card.Card
		want string
	}{
		{"one solid diamond", card.New(card.First, card.First, card.First, card.First), "■  "},
		{"two striped diamonds", card.New(card.First, card.Second, card.Second, card.Second), "▥▥ "},
		{"three open diamonds", card.New(card.First, card.Third, card.Third, card.Third), "□□□"},
		{"solid squiggle", card.New(card.Second, card.First, card.First, card.First), "▲  "},
		{"striped squiggle", card.New(card.Second, card.Second, card.First, card.First), "◬  "},
		{"open squiggles", card.New(card.Second, card.Third, card.First, card.Third), "△△△"},
		{"solid ovals", card.New(card.Third, card.First, card.First, card.Second), "●● "},
		{"striped oval", card.New(card.Third, card.Second, card.First, card.First), "◍  "},
		{"open oval", card.New(card.Third, card.Third, card.First, card.First), "○  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Glyph(tt.card))
		})
	}
}

func TestCardWithoutColor(t *testing.T) {
	t.Parallel()

	r := New(&bytes.Buffer{}, WithColorMode(ColorNever))
	assert.Equal(t, "[●● ]", r.Card(card.New(card.Third, card.First, card.Second, card.Second)))
}

func TestCardWithColor(t *testing.T) {
	t.Parallel()

	r := New(&bytes.Buffer{}, WithColorMode(ColorAlways))

	red := r.Card(card.New(card.First, card.First, card.First, card.First))
	green := r.Card(card.New(card.First, card.First, card.Second, card.First))
	purple := r.Card(card.New(card.First, card.First, card.Third, card.First))

	assert.Contains(t, red, "\x1b[31m")
	assert.Contains(t, green, "\x1b[32m")
	assert.Contains(t, purple, "\x1b[35m")
	assert.True(t, strings.HasPrefix(red, "["))
	assert.True(t, strings.HasSuffix(red, "]"))
}

func TestBoardRows(t *testing.T) {
	t.Parallel()

	board := card.Pile(card.All()[:6])

	var buf bytes.Buffer
	r := New(&buf, WithColorMode(ColorNever))
	require.NoError(t, r.Board(board))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2, "six cards at four per row take two lines")
	assert.Equal(t, "[■  ][■■ ][■■■][■  ]", lines[0])
	assert.Equal(t, "[■■ ][■■■]", lines[1])
}

func TestBoardColumns(t *testing.T) {
	t.Parallel()

	board := card.Pile(card.All()[:6])

	var buf bytes.Buffer
	require.NoError(t, New(&buf, WithColorMode(ColorNever), WithColumns(3)).Board(board))
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))

	buf.Reset()
	require.NoError(t, New(&buf, WithColorMode(ColorNever)).Board(nil))
	assert.Empty(t, buf.String())
}

func TestSets(t *testing.T) {
	t.Parallel()

	a := card.New(card.First, card.First, card.First, card.First)
	b := card.New(card.Second, card.Second, card.Second, card.Second)
	c := card.New(card.Third, card.Third, card.Third, card.Third)

	var buf bytes.Buffer
	r := New(&buf, WithColorMode(ColorNever))
	n, err := r.Sets(finder.Sets(card.Pile{a, b, c}))
	require.NoError(t, err)

	assert.Equal(t, 1, n)
	assert.Equal(t, "[■  ][◬◬ ][○○○]\n", buf.String())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, card.Pile{card.New(card.First, card.First, card.First, card.First)}))
	assert.JSONEq(t, `["diamond:solid:red:1"]`, buf.String())

	assert.Error(t, JSON(&buf, func() {}))
}
