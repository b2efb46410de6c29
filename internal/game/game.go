// Package game ties the deck, the board and the set finder together into a
// single snapshot: one shuffled deck, one dealt board, one pass of set search.
package game

import (
	"iter"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"setgame/internal/game/card"
	"setgame/internal/game/deck"
	"setgame/internal/game/finder"
)

// DefaultBoardSize is the number of cards dealt face up in a standard game.
const DefaultBoardSize = 12

// Game owns its deck and its board; nothing outside it can mutate either.
type Game struct {
	id    uuid.UUID
	seed  uint64
	deck  *deck.Deck
	board card.Pile
}

type settings struct {
	boardSize int
	seed      *uint64
	logger    *slog.Logger
}

// Option customises New.
type Option func(*settings)

// WithBoardSize sets how many cards are dealt. Sizes beyond the deck are
// clamped by the deal; negative sizes deal nothing.
func WithBoardSize(n int) Option {
	return func(s *settings) { s.boardSize = n }
}

// WithSeed makes the shuffle reproducible.
func WithSeed(seed uint64) Option {
	return func(s *settings) { s.seed = &seed }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds and shuffles a full deck and deals the board. It cannot fail.
func New(opts ...Option) *Game {
	s := settings{
		boardSize: DefaultBoardSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	seed := uint64(time.Now().UnixNano())
	if s.seed != nil {
		seed = *s.seed
	}
	rng := rand.New(rand.NewPCG(seed, 0))

	d := deck.NewShuffled(rng)
	s.logger.Debug("deck built", "cards", d.Size(), "seed", seed)

	g := &Game{
		id:   uuid.New(),
		seed: seed,
		deck: d,
	}
	g.board = d.Deal(s.boardSize)

	s.logger.Debug("board dealt",
		"game_id", g.id.String(),
		"board_size", len(g.board),
		"remaining", d.Size())
	return g
}

func (g *Game) ID() uuid.UUID { return g.id }

// Seed is the value the shuffle was drawn from; pass it to WithSeed to replay
// the same board.
func (g *Game) Seed() uint64 { return g.seed }

// Board returns a copy of the dealt cards.
func (g *Game) Board() card.Pile {
	out := make(card.Pile, len(g.board))
	copy(out, g.board)
	return out
}

// Remaining is the number of cards left in the deck after the deal.
func (g *Game) Remaining() int { return g.deck.Size() }

// Sets lazily yields every set on the board in lexicographic index order.
func (g *Game) Sets() iter.Seq[finder.Triple] {
	return finder.Sets(g.board)
}

// Snapshot is the serialisable view of a game.
type Snapshot struct {
	ID        string          `json:"id"`
	Seed      uint64          `json:"seed"`
	Board     card.Pile       `json:"board"`
	Sets      []finder.Triple `json:"sets"`
	Remaining int             `json:"remaining"`
}

func (g *Game) Snapshot() Snapshot {
	sets := make([]finder.Triple, 0)
	for t := range g.Sets() {
		sets = append(sets, t)
	}
	return Snapshot{
		ID:        g.id.String(),
		Seed:      g.seed,
		Board:     g.Board(),
		Sets:      sets,
		Remaining: g.Remaining(),
	}
}
