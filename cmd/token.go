package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"StarGame/config"
	"StarGame/internal/middleware"
)

var tokenCmd = &cobra.Command{
	Use:   "token [subject]",
	Short: "Issue an operator token for POST /tournaments",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject := "operator"
		if len(args) == 1 {
			subject = args[0]
		}
		ttl, _ := cmd.Flags().GetDuration("ttl")
		tok, err := middleware.IssueToken([]byte(config.C.JWT.Secret), subject, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")
}
