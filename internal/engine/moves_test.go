package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/wheel-of-fortune/internal/models"
)

func TestValidateMoveExitAndPass(t *testing.T) {
	for _, raw := range []string{"EXIT", "exit", " Exit "} {
		action, err := ValidateMove(raw, models.GuessedLetters{}, 0)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, ActionExit, action.Kind)
	}

	action, err := ValidateMove("pass", models.GuessedLetters{}, 0)
	require.NoError(t, err)
	assert.Equal(t, ActionPass, action.Kind)
}

func TestValidateMoveConsonantAlwaysAccepted(t *testing.T) {
	action, err := ValidateMove("T", models.GuessedLetters{}, 0)
	require.NoError(t, err)
	assert.Equal(t, ActionGuessLetter, action.Kind)
	assert.Equal(t, 'T', action.Letter)
}

func TestValidateMoveVowelGating(t *testing.T) {
	_, err := ValidateMove("A", models.GuessedLetters{}, models.VowelCost-1)
	assert.Error(t, err, "unaffordable vowel must be rejected")

	action, err := ValidateMove("A", models.GuessedLetters{}, models.VowelCost)
	require.NoError(t, err)
	assert.Equal(t, ActionGuessLetter, action.Kind)
	assert.Equal(t, 'A', action.Letter)
}

func TestValidateMoveRejectsRepeatedLetter(t *testing.T) {
	_, err := ValidateMove("T", models.GuessedLetters{'T': true}, 1000)
	assert.Error(t, err)
}

func TestValidateMoveRejectsEmpty(t *testing.T) {
	_, err := ValidateMove("   ", models.GuessedLetters{}, 1000)
	assert.Error(t, err)
}

func TestValidateMovePhraseAttempt(t *testing.T) {
	// Anything longer than a letter is a phrase attempt, accepted as such
	// even when it is wrong. Correctness is the engine's concern.
	action, err := ValidateMove("hello world", models.GuessedLetters{}, 0)
	require.NoError(t, err)
	assert.Equal(t, ActionGuessPhrase, action.Kind)
	assert.Equal(t, "HELLO WORLD", action.Phrase)
}

func TestValidateMoveSingleNonLetterIsPhraseAttempt(t *testing.T) {
	action, err := ValidateMove("7", models.GuessedLetters{}, 0)
	require.NoError(t, err)
	assert.Equal(t, ActionGuessPhrase, action.Kind)
}
