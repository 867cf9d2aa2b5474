package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tatianab/wheel-of-fortune/internal/config"
	"github.com/tatianab/wheel-of-fortune/internal/models"
	"github.com/tatianab/wheel-of-fortune/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	wheel, err := models.LoadWheel(cfg.WheelFile)
	if err != nil {
		reportLoadError(err)
		os.Exit(1)
	}

	catalog, err := models.LoadPhrases(cfg.PhrasesFile)
	if err != nil {
		reportLoadError(err)
		os.Exit(1)
	}

	if err := tui.Run(wheel, catalog, cfg.Seed); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// reportLoadError prints one human-readable line for a setup failure,
// distinguishing a missing data file from a malformed one.
func reportLoadError(err error) {
	var loadErr *models.DataLoadError
	if errors.As(err, &loadErr) && loadErr.Missing {
		fmt.Printf("Error: data file %s was not found.\n", loadErr.Source)
		return
	}
	fmt.Printf("Error loading game data: %v\n", err)
}
