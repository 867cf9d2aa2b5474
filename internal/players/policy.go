package players

import (
	"math/rand"
	"strings"

	"github.com/tatianab/wheel-of-fortune/internal/models"
)

// frequencyRank orders the alphabet by English letter frequency, rarest
// first. A letter's index is its frequency score.
const frequencyRank = "ZQXJKVBPYGFWMUCLDRHSNIOATE"

// PossibleLetters returns the letters a contestant with the given money may
// still guess: not yet guessed, and vowels only once money covers the vowel
// cost.
func PossibleLetters(guessed models.GuessedLetters, money int) []rune {
	var eligible []rune
	for _, ch := range models.Letters {
		if guessed.Has(ch) {
			continue
		}
		if models.IsVowel(ch) && money < models.VowelCost {
			continue
		}
		eligible = append(eligible, ch)
	}
	return eligible
}

// Decide picks the computer's move: a single letter, or "PASS" when nothing
// is left to guess. A draw from 1..10 that beats the difficulty makes the
// pick "smart" (most frequent eligible letter); otherwise the pick is
// uniform over the eligible letters. Difficulty 1 is smart 90% of the time,
// difficulty 10 never.
func Decide(guessed models.GuessedLetters, money, difficulty int, rng *rand.Rand) string {
	eligible := PossibleLetters(guessed, money)
	if len(eligible) == 0 {
		return "PASS"
	}

	if rng.Intn(10)+1 > difficulty {
		best := eligible[0]
		for _, ch := range eligible[1:] {
			if strings.IndexRune(frequencyRank, ch) > strings.IndexRune(frequencyRank, best) {
				best = ch
			}
		}
		return string(best)
	}

	return string(eligible[rng.Intn(len(eligible))])
}
