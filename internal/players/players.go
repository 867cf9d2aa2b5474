package players

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/tatianab/wheel-of-fortune/internal/models"
)

// Player holds the money and prize state shared by both contestant kinds.
type Player struct {
	Name   string
	Money  int
	Prizes map[string]bool
}

func newPlayer(name string) Player {
	return Player{Name: name, Prizes: make(map[string]bool)}
}

// AddMoney credits winnings from a correct guess.
func (p *Player) AddMoney(amount int) { p.Money += amount }

// GoBankrupt zeroes the player's money. Prizes already won are kept.
func (p *Player) GoBankrupt() { p.Money = 0 }

// AddPrize records a won prize. Winning the same prize twice is a no-op.
func (p *Player) AddPrize(prize string) { p.Prizes[prize] = true }

func (p *Player) String() string {
	return fmt.Sprintf("%s ($%d)", p.Name, p.Money)
}

// MoveContext is everything a contestant may see when asked for a move.
// The secret phrase itself is deliberately absent: contestants reason only
// about the board.
type MoveContext struct {
	Category       string
	ObscuredPhrase string
	Guessed        models.GuessedLetters
	// Rejection carries why the previous attempt was refused, so a prompt
	// can tell the player before asking again. Empty on the first ask.
	Rejection string
}

// Contestant is the shared capability over the Human and Computer variants.
// DecideMove returns a raw move string; the engine owns validation and will
// ask again if the move is rejected.
type Contestant interface {
	Info() *Player
	DecideMove(ctx MoveContext) (string, error)
}

// PromptFunc is the external collaborator a Human delegates move entry to.
// It owns all prompt and board rendering; the raw answer is returned as
// typed.
type PromptFunc func(ctx MoveContext, p *Player) (string, error)

// Human is an interactive contestant.
type Human struct {
	Player
	Prompt PromptFunc
}

// NewHuman creates a human contestant. prompt may be nil when the driver
// collects moves itself (the TUI does).
func NewHuman(name string, prompt PromptFunc) *Human {
	return &Human{Player: newPlayer(name), Prompt: prompt}
}

func (h *Human) Info() *Player { return &h.Player }

func (h *Human) DecideMove(ctx MoveContext) (string, error) {
	if h.Prompt == nil {
		return "", fmt.Errorf("player %s has no prompt collaborator", h.Name)
	}
	raw, err := h.Prompt(ctx, &h.Player)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(strings.TrimSpace(raw)), nil
}

// Computer is an automated contestant. Difficulty runs 1 (hardest) to 10
// (easiest); it holds its own seeded rng so behavior replays from a seed.
type Computer struct {
	Player
	Difficulty int
	rng        *rand.Rand
}

// NewComputer creates a computer contestant with its own random source.
func NewComputer(name string, difficulty int, seed int64) *Computer {
	return &Computer{
		Player:     newPlayer(name),
		Difficulty: difficulty,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

func (c *Computer) Info() *Player { return &c.Player }

func (c *Computer) DecideMove(ctx MoveContext) (string, error) {
	return Decide(ctx.Guessed, c.Money, c.Difficulty, c.rng), nil
}
