package engine

import (
	"fmt"
	"strings"

	"github.com/tatianab/wheel-of-fortune/internal/models"
)

// ActionKind enumerates the structurally valid moves a player can make.
type ActionKind int

const (
	ActionExit ActionKind = iota
	ActionPass
	ActionGuessLetter
	ActionGuessPhrase
)

// Action is one validated move. Letter is set for ActionGuessLetter, Phrase
// for ActionGuessPhrase.
type Action struct {
	Kind   ActionKind
	Letter rune
	Phrase string
}

// ValidateMove turns a raw move string into an Action, or an error telling
// the player why the move was rejected. Rejection never costs the turn; the
// caller re-prompts until a valid Action comes back.
//
// Precedence: EXIT, then PASS, then a single-letter guess, then anything
// else non-empty as a full-phrase attempt. Phrase attempts are structurally
// valid regardless of content; correctness is the engine's call.
func ValidateMove(raw string, guessed models.GuessedLetters, money int) (Action, error) {
	move := strings.ToUpper(strings.TrimSpace(raw))

	switch {
	case move == "":
		return Action{}, fmt.Errorf("enter a letter, the full phrase, PASS or EXIT")
	case move == "EXIT":
		return Action{Kind: ActionExit}, nil
	case move == "PASS":
		return Action{Kind: ActionPass}, nil
	}

	if chars := []rune(move); len(chars) == 1 && models.IsLetter(chars[0]) {
		ch := chars[0]
		if guessed.Has(ch) {
			return Action{}, fmt.Errorf("%c was already guessed", ch)
		}
		if models.IsVowel(ch) && money < models.VowelCost {
			return Action{}, fmt.Errorf("a vowel costs $%d and you have $%d", models.VowelCost, money)
		}
		return Action{Kind: ActionGuessLetter, Letter: ch}, nil
	}

	return Action{Kind: ActionGuessPhrase, Phrase: move}, nil
}
