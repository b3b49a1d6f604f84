package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"showboat/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export <document-id>",
		Short: "Render a stored document as markdown or HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, ok := export.ParseFormat(formatFlag)
			if !ok {
				return fmt.Errorf("unknown format %q (want markdown or html)", formatFlag)
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			rendered, err := export.New(store).Document(cmd.Context(), args[0], format)
			if err != nil {
				return err
			}

			if outputPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}
			if err := os.WriteFile(outputPath, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "markdown", "Output format: markdown or html")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}
