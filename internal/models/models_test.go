package models

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestObscure(t *testing.T) {
	phrase := "HELLO WORLD"
	guessed := GuessedLetters{}

	got := Obscure(phrase, guessed)
	if got != "_____ _____" {
		t.Errorf("Obscure with no guesses = %q, want %q", got, "_____ _____")
	}
	if len(got) != len(phrase) {
		t.Errorf("Obscure changed length: %d != %d", len(got), len(phrase))
	}

	for _, ch := range "HELOWRD" {
		guessed.Add(ch)
	}
	if got := Obscure(phrase, guessed); got != phrase {
		t.Errorf("Obscure with all letters guessed = %q, want %q", got, phrase)
	}
}

func TestObscurePreservesNonLetters(t *testing.T) {
	phrase := "IT'S A 10/10, FRIEND!"
	got := Obscure(phrase, GuessedLetters{})
	for i, ch := range phrase {
		if IsLetter(ch) {
			continue
		}
		if got[i] != phrase[i] {
			t.Errorf("non-letter at index %d changed: %q -> %q", i, phrase[i], got[i])
		}
	}
}

func TestObscureFullAlphabet(t *testing.T) {
	guessed := GuessedLetters{}
	for _, ch := range Letters {
		guessed.Add(ch)
	}
	phrase := "THE QUICK BROWN FOX"
	if got := Obscure(phrase, guessed); got != phrase {
		t.Errorf("Obscure with full alphabet = %q, want %q", got, phrase)
	}
}

func TestGuessedLettersIdempotent(t *testing.T) {
	guessed := GuessedLetters{}
	guessed.Add('A')
	guessed.Add('A')
	if len(guessed) != 1 {
		t.Errorf("expected 1 guessed letter, got %d", len(guessed))
	}
	if !guessed.Has('A') {
		t.Error("expected A to be guessed")
	}
}

func TestParseSegmentKind(t *testing.T) {
	for raw, want := range map[string]SegmentKind{
		"bankrupt": Bankrupt,
		"LOSETURN": LoseTurn,
		"cash":     Cash,
	} {
		got, err := ParseSegmentKind(raw)
		if err != nil {
			t.Errorf("ParseSegmentKind(%q) failed: %v", raw, err)
		}
		if got != want {
			t.Errorf("ParseSegmentKind(%q) = %q, want %q", raw, got, want)
		}
	}

	if _, err := ParseSegmentKind("jackpot"); err == nil {
		t.Error("expected error for unknown segment kind")
	}
}

func TestWheelValidate(t *testing.T) {
	if err := (Wheel{}).Validate(); !errors.Is(err, ErrInvalidWheel) {
		t.Errorf("empty wheel: got %v, want ErrInvalidWheel", err)
	}

	bad := Wheel{{Text: "$-100", Kind: Cash, Value: -100}}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidWheel) {
		t.Errorf("negative value: got %v, want ErrInvalidWheel", err)
	}

	good := Wheel{{Text: "$500", Kind: Cash, Value: 500}, {Text: "BANKRUPT", Kind: Bankrupt}}
	if err := good.Validate(); err != nil {
		t.Errorf("valid wheel failed validation: %v", err)
	}
}

func TestWheelValidateRejectsNonCanonicalKind(t *testing.T) {
	// Resolve dispatches on the exact constants, so a segment whose kind
	// never went through ParseSegmentKind must not pass validation.
	bad := Wheel{{Text: "BANKRUPT", Kind: SegmentKind("BANKRUPT")}}
	if err := bad.Validate(); !errors.Is(err, ErrInvalidWheel) {
		t.Errorf("uppercase kind: got %v, want ErrInvalidWheel", err)
	}
}

func TestWheelUnmarshalNormalizesKind(t *testing.T) {
	data := []byte("- { text: \"BANKRUPT\", type: BANKRUPT }\n- { text: \"$500\", type: Cash, value: 500 }\n")

	var wheel Wheel
	if err := yaml.Unmarshal(data, &wheel); err != nil {
		t.Fatalf("failed to unmarshal wheel: %v", err)
	}
	if wheel[0].Kind != Bankrupt {
		t.Errorf("kind = %q, want %q", wheel[0].Kind, Bankrupt)
	}
	if wheel[1].Kind != Cash {
		t.Errorf("kind = %q, want %q", wheel[1].Kind, Cash)
	}
	if err := wheel.Validate(); err != nil {
		t.Errorf("normalized wheel failed validation: %v", err)
	}
}

func TestWheelUnmarshalRejectsUnknownKind(t *testing.T) {
	var wheel Wheel
	if err := yaml.Unmarshal([]byte("- { text: \"JACKPOT\", type: jackpot }\n"), &wheel); err == nil {
		t.Error("expected unmarshal error for unknown segment type")
	}
}

func TestPhraseCatalogValidate(t *testing.T) {
	if err := (PhraseCatalog{}).Validate(); !errors.Is(err, ErrInvalidPhraseData) {
		t.Errorf("empty catalog: got %v, want ErrInvalidPhraseData", err)
	}
	if err := (PhraseCatalog{"Empty": {}}).Validate(); !errors.Is(err, ErrInvalidPhraseData) {
		t.Errorf("empty category: got %v, want ErrInvalidPhraseData", err)
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	wheel, err := LoadWheel("")
	if err != nil {
		t.Fatalf("failed to load embedded wheel: %v", err)
	}
	if len(wheel) == 0 {
		t.Fatal("embedded wheel is empty")
	}

	catalog, err := LoadPhrases("")
	if err != nil {
		t.Fatalf("failed to load embedded phrases: %v", err)
	}
	for category, phrases := range catalog {
		for _, phrase := range phrases {
			if phrase != strings.ToUpper(phrase) {
				t.Errorf("category %q: phrase %q not uppercased", category, phrase)
			}
		}
	}
}

func TestLoadWheelMissingFile(t *testing.T) {
	_, err := LoadWheel("testdata/does-not-exist.yaml")
	var loadErr *DataLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *DataLoadError, got %v", err)
	}
	if !loadErr.Missing {
		t.Error("expected Missing to be set for absent file")
	}
}
