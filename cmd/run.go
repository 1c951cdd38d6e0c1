package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"StarGame/config"
	"StarGame/internal/game/engine"
	"StarGame/internal/game/manager"
	"StarGame/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play one tournament and print its event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := startRequest(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			req.Seed, _ = cmd.Flags().GetInt64("seed")
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		detailed, _ := cmd.Flags().GetBool("standings")
		asJSON, _ := cmd.Flags().GetBool("json")

		ctx := cmd.Context()
		repo, err := storage.OpenArchive(ctx, config.C)
		if err != nil {
			return err
		}
		defer storage.Close()

		mgr := manager.NewGameManager(nil, repo)
		defer mgr.Close()

		eng, err := mgr.Prepare(req)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		archiveRound := eng.OnRound
		eng.OnRound = func(rep engine.RoundReport) {
			archiveRound(rep)
			if quiet || asJSON {
				return
			}
			printEvents(out, rep.Events)
			if n := len(rep.Events); detailed && n > 0 && rep.Events[n-1].Type == engine.EventRoundEnded {
				t, _, _ := eng.Snapshot()
				fmt.Fprintln(out, standingsTable(engine.Standings(t)))
			}
		}

		res, err := mgr.RunEngine(ctx, eng)
		if err != nil {
			return err
		}
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		fmt.Fprintf(out, "\ntournament %s, seed %d, %d rounds\n", res.ID, res.Seed, res.Rounds)
		fmt.Fprintln(out, resultTable(res))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addGameFlags(runCmd)
	runCmd.Flags().Int64("seed", 0, "random seed, 0 draws one (default game.seed)")
	runCmd.Flags().Bool("standings", false, "print every actor's odds after each round")
	runCmd.Flags().BoolP("quiet", "q", false, "only print the final result")
	runCmd.Flags().Bool("json", false, "print the result as JSON")
}
