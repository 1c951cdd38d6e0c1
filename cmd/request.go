package main

import (
	"github.com/spf13/cobra"

	"StarGame/config"
	"StarGame/internal/game/manager"
	"StarGame/internal/roster"
)

// addGameFlags registers the flags shared by run and batch. Unset flags
// fall back to the config file.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().Int("actors", 0, "number of actors (default game.actors)")
	cmd.Flags().Int("rounds", 0, "round limit (default game.rounds)")
	cmd.Flags().String("names", "", "names file, .txt or .yaml (default game.names)")
}

func startRequest(cmd *cobra.Command) (manager.StartRequest, error) {
	req := manager.StartRequest{
		Actors: config.C.Game.Actors,
		Rounds: config.C.Game.Rounds,
		Seed:   config.C.Game.Seed,
	}
	if cmd.Flags().Changed("actors") {
		req.Actors, _ = cmd.Flags().GetInt("actors")
	}
	if cmd.Flags().Changed("rounds") {
		req.Rounds, _ = cmd.Flags().GetInt("rounds")
	}
	namesFile := config.C.Game.Names
	if cmd.Flags().Changed("names") {
		namesFile, _ = cmd.Flags().GetString("names")
	}
	if namesFile != "" {
		names, err := roster.Load(namesFile)
		if err != nil {
			return req, err
		}
		req.Names = names
	}
	return req, nil
}
