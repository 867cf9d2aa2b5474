package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/tatianab/wheel-of-fortune/internal/models"
	"github.com/tatianab/wheel-of-fortune/internal/players"
)

// Phase is the engine's position in the turn state machine.
type Phase int

const (
	PhaseSpinning Phase = iota
	PhaseGuessing
	PhaseTurnEnd
	PhaseGameOver
)

// Setup carries everything a new game needs. Seed 0 means derive one from
// the clock; any other value replays the same game.
type Setup struct {
	Wheel       models.Wheel
	Catalog     models.PhraseCatalog
	Contestants []players.Contestant
	Seed        int64
}

// Game drives one Wheel of Fortune session: it owns the secret phrase, the
// shared guessed-letter set, turn order and win detection. Drivers (the TUI
// or the headless simulator) step it through Spin, Resolve, Play and
// AdvanceTurn; exactly one contestant acts at a time.
type Game struct {
	wheel       models.Wheel
	category    string
	phrase      string
	guessed     models.GuessedLetters
	contestants []players.Contestant
	current     int
	winner      players.Contestant
	phase       Phase
	rng         *rand.Rand
}

// New validates the setup and picks the session's category and phrase.
// Malformed wheel or catalog data and an empty contestant list all fail
// here, before any turn is taken.
func New(setup Setup) (*Game, error) {
	if err := setup.Wheel.Validate(); err != nil {
		return nil, err
	}
	if err := setup.Catalog.Validate(); err != nil {
		return nil, err
	}
	if len(setup.Contestants) == 0 {
		return nil, models.ErrNoPlayers
	}

	seed := setup.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	category, phrase := pickCategoryAndPhrase(setup.Catalog, rng)

	return &Game{
		wheel:       setup.Wheel,
		category:    category,
		phrase:      phrase,
		guessed:     models.GuessedLetters{},
		contestants: setup.Contestants,
		rng:         rng,
	}, nil
}

// pickCategoryAndPhrase draws a category, then a phrase within it, both
// uniformly. Categories are sorted first so a seed always replays the same
// pick.
func pickCategoryAndPhrase(catalog models.PhraseCatalog, rng *rand.Rand) (string, string) {
	categories := make([]string, 0, len(catalog))
	for category := range catalog {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	category := categories[rng.Intn(len(categories))]
	phrases := catalog[category]
	phrase := strings.ToUpper(phrases[rng.Intn(len(phrases))])
	return category, phrase
}

// Spin draws a uniform segment for the current player and moves the game to
// the resolving step.
func (g *Game) Spin() models.WheelSegment {
	return g.wheel[g.rng.Intn(len(g.wheel))]
}

// Resolve applies a spun segment's immediate effect and returns the next
// phase: BANKRUPT wipes the current player's money, LOSE_TURN does nothing,
// and only CASH opens the guessing step.
func (g *Game) Resolve(seg models.WheelSegment) Phase {
	switch seg.Kind {
	case models.Bankrupt:
		g.CurrentPlayer().GoBankrupt()
		g.phase = PhaseTurnEnd
	case models.LoseTurn:
		g.phase = PhaseTurnEnd
	default:
		g.phase = PhaseGuessing
	}
	return g.phase
}

// MoveResult reports what one submitted move did. A rejected move carries
// the reason and costs nothing; the caller re-prompts.
type MoveResult struct {
	Action   Action
	Rejected bool
	Reason   string
	Revealed int // occurrences uncovered by a letter guess
	Awarded  int // money credited for this move
	Won      bool
	Exited   bool
}

// Play validates and applies one raw move for the current player on the
// given CASH segment. EXIT ends the whole game with no winner. A correct
// letter awards the segment's value per occurrence revealed (plus the
// segment's prize, if it carries one); the exact phrase wins outright.
func (g *Game) Play(seg models.WheelSegment, raw string) MoveResult {
	action, err := ValidateMove(raw, g.guessed, g.CurrentPlayer().Money)
	if err != nil {
		return MoveResult{Rejected: true, Reason: err.Error()}
	}

	res := MoveResult{Action: action}
	player := g.CurrentPlayer()

	switch action.Kind {
	case ActionExit:
		g.phase = PhaseGameOver
		res.Exited = true

	case ActionPass:
		g.phase = PhaseTurnEnd

	case ActionGuessLetter:
		g.guessed.Add(action.Letter)
		res.Revealed = strings.Count(g.phrase, string(action.Letter))
		if res.Revealed > 0 {
			res.Awarded = seg.Value * res.Revealed
			player.AddMoney(res.Awarded)
			if seg.Prize != "" {
				player.AddPrize(seg.Prize)
			}
		}
		if g.Obscured() == g.phrase {
			g.winner = g.Current()
			g.phase = PhaseGameOver
			res.Won = true
		} else {
			g.phase = PhaseTurnEnd
		}

	case ActionGuessPhrase:
		if action.Phrase == g.phrase {
			res.Awarded = seg.Value
			player.AddMoney(res.Awarded)
			if seg.Prize != "" {
				player.AddPrize(seg.Prize)
			}
			g.winner = g.Current()
			g.phase = PhaseGameOver
			res.Won = true
		} else {
			g.phase = PhaseTurnEnd
		}
	}

	return res
}

// RequestMove asks the current contestant for a move until one is accepted,
// then applies it. Rejections are fed back through the contestant's next
// MoveContext so an interactive prompt can show them.
func (g *Game) RequestMove(seg models.WheelSegment) (MoveResult, error) {
	ctx := g.MoveContext()
	for {
		raw, err := g.Current().DecideMove(ctx)
		if err != nil {
			return MoveResult{}, fmt.Errorf("move from %s: %w", g.CurrentPlayer().Name, err)
		}
		res := g.Play(seg, raw)
		if !res.Rejected {
			return res, nil
		}
		ctx.Rejection = res.Reason
	}
}

// AdvanceTurn rotates to the next contestant and reopens the spin step.
// A finished game stays finished.
func (g *Game) AdvanceTurn() {
	if g.phase == PhaseGameOver {
		return
	}
	g.current = (g.current + 1) % len(g.contestants)
	g.phase = PhaseSpinning
}

// MoveContext is the board view handed to whoever decides the next move.
func (g *Game) MoveContext() players.MoveContext {
	return players.MoveContext{
		Category:       g.category,
		ObscuredPhrase: g.Obscured(),
		Guessed:        g.guessed,
	}
}

// Current returns the contestant whose turn it is.
func (g *Game) Current() players.Contestant { return g.contestants[g.current] }

// CurrentPlayer returns the current contestant's player state.
func (g *Game) CurrentPlayer() *players.Player { return g.Current().Info() }

// Contestants returns the seating order.
func (g *Game) Contestants() []players.Contestant { return g.contestants }

// Category returns the chosen category name.
func (g *Game) Category() string { return g.category }

// Phrase returns the secret phrase. Drivers only show it once the game is
// over.
func (g *Game) Phrase() string { return g.phrase }

// Obscured renders the board's view of the phrase.
func (g *Game) Obscured() string { return models.Obscure(g.phrase, g.guessed) }

// Guessed returns the shared guessed-letter set.
func (g *Game) Guessed() models.GuessedLetters { return g.guessed }

// Phase returns the engine's position in the turn cycle.
func (g *Game) Phase() Phase { return g.phase }

// Done reports whether the game is over, by win or by exit.
func (g *Game) Done() bool { return g.phase == PhaseGameOver }

// Winner returns the winning contestant, or false while no winner has been
// declared (the game is still running, or it ended through EXIT).
func (g *Game) Winner() (players.Contestant, bool) {
	return g.winner, g.winner != nil
}
