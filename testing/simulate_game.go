package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/tatianab/wheel-of-fortune/internal/engine"
	"github.com/tatianab/wheel-of-fortune/internal/models"
	"github.com/tatianab/wheel-of-fortune/internal/players"
)

const maxTurns = 500

func main() {
	seed := flag.Int64("seed", 1, "seed for the whole simulation; same seed, same game")
	count := flag.Int("players", 3, "number of computer players")
	difficulty := flag.Int("difficulty", 3, "computer difficulty, 1 (hardest) to 10")
	flag.Parse()

	wheel, err := models.LoadWheel("")
	if err != nil {
		log.Fatalf("Failed to load wheel: %v", err)
	}
	catalog, err := models.LoadPhrases("")
	if err != nil {
		log.Fatalf("Failed to load phrases: %v", err)
	}

	contestants := make([]players.Contestant, 0, *count)
	for i := 0; i < *count; i++ {
		contestants = append(contestants, players.NewComputer(
			fmt.Sprintf("Computer %d", i+1), *difficulty, *seed+int64(i)+1))
	}

	game, err := engine.New(engine.Setup{
		Wheel:       wheel,
		Catalog:     catalog,
		Contestants: contestants,
		Seed:        *seed,
	})
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	fmt.Printf("Category: %s\n\n", game.Category())

	for turn := 1; !game.Done(); turn++ {
		if turn > maxTurns {
			log.Fatalf("Game did not finish within %d turns", maxTurns)
		}

		player := game.CurrentPlayer()
		seg := game.Spin()
		fmt.Printf("--- Turn %d: %s spins %s ---\n", turn, player, seg.Text)

		switch game.Resolve(seg) {
		case engine.PhaseGuessing:
			res, err := game.RequestMove(seg)
			if err != nil {
				log.Fatalf("Turn %d failed: %v", turn, err)
			}
			describeMove(player, res)
		default:
			if seg.Kind == models.Bankrupt {
				fmt.Printf("%s goes bankrupt!\n", player.Name)
			} else {
				fmt.Printf("%s loses the turn.\n", player.Name)
			}
		}

		fmt.Printf("Board: %s\n\n", game.Obscured())
		game.AdvanceTurn()
	}

	if winner, ok := game.Winner(); ok {
		fmt.Printf("%s wins! The phrase was: %s\n", winner.Info(), game.Phrase())
	} else {
		fmt.Println("Game exited with no winner.")
	}
}

func describeMove(player *players.Player, res engine.MoveResult) {
	switch {
	case res.Action.Kind == engine.ActionPass:
		fmt.Printf("%s passes.\n", player.Name)
	case res.Action.Kind == engine.ActionGuessPhrase && res.Won:
		fmt.Printf("%s solves the puzzle!\n", player.Name)
	case res.Action.Kind == engine.ActionGuessPhrase:
		fmt.Printf("%s guesses %q: wrong.\n", player.Name, res.Action.Phrase)
	case res.Revealed > 0:
		fmt.Printf("%s guesses %c: %d revealed, +$%d.\n", player.Name, res.Action.Letter, res.Revealed, res.Awarded)
	default:
		fmt.Printf("%s guesses %c: not in the phrase.\n", player.Name, res.Action.Letter)
	}
}
