package models

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/wheel.yaml
var defaultWheel []byte

//go:embed data/phrases.yaml
var defaultPhrases []byte

// LoadWheel reads the wheel catalog from path, or the embedded default when
// path is empty. Failures come back as *DataLoadError, with Missing set when
// the file does not exist.
func LoadWheel(path string) (Wheel, error) {
	data, err := readSource("wheel", path, defaultWheel)
	if err != nil {
		return nil, err
	}

	var wheel Wheel
	if err := yaml.Unmarshal(data, &wheel); err != nil {
		return nil, &DataLoadError{Source: sourceName("wheel", path), Err: err}
	}
	if err := wheel.Validate(); err != nil {
		return nil, &DataLoadError{Source: sourceName("wheel", path), Err: err}
	}
	return wheel, nil
}

// LoadPhrases reads the phrase catalog from path, or the embedded default
// when path is empty. Every phrase is normalized to uppercase so board
// comparisons stay case-insensitive to the source data.
func LoadPhrases(path string) (PhraseCatalog, error) {
	data, err := readSource("phrases", path, defaultPhrases)
	if err != nil {
		return nil, err
	}

	var catalog PhraseCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, &DataLoadError{Source: sourceName("phrases", path), Err: err}
	}
	for category, phrases := range catalog {
		for i, phrase := range phrases {
			phrases[i] = strings.ToUpper(phrase)
		}
		catalog[category] = phrases
	}
	if err := catalog.Validate(); err != nil {
		return nil, &DataLoadError{Source: sourceName("phrases", path), Err: err}
	}
	return catalog, nil
}

func readSource(kind, path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataLoadError{
			Source:  sourceName(kind, path),
			Missing: errors.Is(err, fs.ErrNotExist),
			Err:     err,
		}
	}
	return data, nil
}

func sourceName(kind, path string) string {
	if path == "" {
		return "embedded " + kind + " data"
	}
	return path
}
