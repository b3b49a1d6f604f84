package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the local chunk database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			health, err := store.CheckHealth(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database:  %s\n", health.DBPath)
			fmt.Fprintf(out, "Readable:  %v\n", health.DatabaseReadable)
			fmt.Fprintf(out, "Integrity: %v\n", health.IntegrityCheck)
			fmt.Fprintf(out, "Documents: %d\n", health.DocumentCount)
			fmt.Fprintf(out, "Chunks:    %d\n", health.TotalChunks)
			if health.Error != "" {
				fmt.Fprintf(out, "Error:     %s\n", health.Error)
			}
			return nil
		},
	}
}
