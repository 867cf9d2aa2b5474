package models

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// Letters is the guessable alphabet. Anything outside it passes
	// through the board unobscured.
	Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Vowels  = "AEIOU"

	// VowelCost is the minimum money a player needs before a vowel
	// guess is accepted.
	VowelCost = 250
)

// SegmentKind is the closed set of wheel outcomes. External data is matched
// case-insensitively and normalized to these constants at load time; an
// unknown type is rejected. Engine code only ever sees the canonical values.
type SegmentKind string

const (
	Bankrupt SegmentKind = "bankrupt"
	LoseTurn SegmentKind = "loseturn"
	Cash     SegmentKind = "cash"
)

// ParseSegmentKind maps a raw type string from the wheel data source onto a
// SegmentKind.
func ParseSegmentKind(raw string) (SegmentKind, error) {
	switch k := SegmentKind(strings.ToLower(raw)); k {
	case Bankrupt, LoseTurn, Cash:
		return k, nil
	default:
		return "", fmt.Errorf("unknown wheel segment type %q", raw)
	}
}

// UnmarshalYAML decodes a raw type string into its canonical SegmentKind, so
// a wheel file may spell "BANKRUPT" or "Bankrupt" and the engine still
// switches on the one constant.
func (k *SegmentKind) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	kind, err := ParseSegmentKind(raw)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// WheelSegment is one face of the wheel. Immutable once loaded.
type WheelSegment struct {
	Text  string      `yaml:"text"`
	Kind  SegmentKind `yaml:"type"`
	Value int         `yaml:"value,omitempty"`
	Prize string      `yaml:"prize,omitempty"`
}

// Validate checks a single segment against the load-time rules. Only the
// canonical SegmentKind constants pass: Resolve dispatches on them exactly,
// so a non-normalized kind here would play as something it is not.
func (s WheelSegment) Validate() error {
	switch s.Kind {
	case Bankrupt, LoseTurn, Cash:
	default:
		return fmt.Errorf("unknown wheel segment type %q", s.Kind)
	}
	if s.Value < 0 {
		return fmt.Errorf("segment %q has negative value %d", s.Text, s.Value)
	}
	return nil
}

// Wheel is a non-empty catalog of segments. Duplicate faces are allowed and
// bias spin probability proportionally, so frequency encodes face area.
type Wheel []WheelSegment

// Validate reports the first structural problem with the wheel, wrapped in
// ErrInvalidWheel.
func (w Wheel) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("%w: no segments", ErrInvalidWheel)
	}
	for i, seg := range w {
		if err := seg.Validate(); err != nil {
			return fmt.Errorf("%w: segment %d: %v", ErrInvalidWheel, i, err)
		}
	}
	return nil
}

// PhraseCatalog maps a category name to its candidate phrases.
type PhraseCatalog map[string][]string

// Validate reports an empty catalog or an empty category, wrapped in
// ErrInvalidPhraseData.
func (c PhraseCatalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidPhraseData)
	}
	for category, phrases := range c {
		if len(phrases) == 0 {
			return fmt.Errorf("%w: category %q has no phrases", ErrInvalidPhraseData, category)
		}
	}
	return nil
}

// GuessedLetters is the shared, monotonically growing set of letters guessed
// so far. Visible to every player.
type GuessedLetters map[rune]bool

// Add records a guess. Re-adding a letter is a no-op.
func (g GuessedLetters) Add(ch rune) { g[ch] = true }

// Has reports whether ch was already guessed.
func (g GuessedLetters) Has(ch rune) bool { return g[ch] }

// Sorted returns the guessed letters in alphabetical order for display.
func (g GuessedLetters) Sorted() []rune {
	out := make([]rune, 0, len(g))
	for _, ch := range Letters {
		if g[ch] {
			out = append(out, ch)
		}
	}
	return out
}

// IsLetter reports whether ch is one of the 26 uppercase letters A-Z.
func IsLetter(ch rune) bool { return ch >= 'A' && ch <= 'Z' }

// IsVowel reports whether ch is an uppercase vowel.
func IsVowel(ch rune) bool { return strings.ContainsRune(Vowels, ch) }

// Obscure renders phrase with every unguessed letter replaced by '_'.
// Non-letter characters always pass through, so the result has the same
// length as phrase. Obscure(phrase, g) == phrase exactly when every letter
// of the phrase has been guessed.
func Obscure(phrase string, guessed GuessedLetters) string {
	var b strings.Builder
	b.Grow(len(phrase))
	for _, ch := range phrase {
		if IsLetter(ch) && !guessed.Has(ch) {
			b.WriteRune('_')
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}
