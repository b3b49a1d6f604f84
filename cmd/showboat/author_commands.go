package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newInitCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "init [title]",
		Short: "Start a new document and print its id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, err := ctx.newClient()
			if err != nil {
				return err
			}

			title := ""
			if len(args) == 1 {
				title = args[0]
			}

			documentID := uuid.NewString()
			if err := remote.Send(cmd.Context(), documentID, "init", map[string]string{"title": title}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), documentID)
			return nil
		},
	}
}

func newNoteCommand(ctx *commandContext) *cobra.Command {
	var documentID string

	cmd := &cobra.Command{
		Use:   "note <markdown>",
		Short: "Append a markdown note (pass - to read stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, err := ctx.newClient()
			if err != nil {
				return err
			}

			markdown := args[0]
			if markdown == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				markdown = string(data)
			}

			return remote.Send(cmd.Context(), documentID, "note", map[string]string{"markdown": markdown})
		},
	}

	addDocumentFlag(cmd, &documentID)
	return cmd
}

func newExecCommand(ctx *commandContext) *cobra.Command {
	var documentID string
	var language string

	cmd := &cobra.Command{
		Use:   "exec <command...>",
		Short: "Run a shell command and append its input and output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, err := ctx.newClient()
			if err != nil {
				return err
			}

			input := strings.Join(args, " ")
			// Output is captured whether or not the command succeeds; a
			// failing command is still part of the narrative.
			output, _ := exec.CommandContext(cmd.Context(), "sh", "-c", input).CombinedOutput()

			return remote.Send(cmd.Context(), documentID, "exec", map[string]string{
				"language": language,
				"input":    input,
				"output":   strings.TrimRight(string(output), "\n"),
			})
		},
	}

	addDocumentFlag(cmd, &documentID)
	cmd.Flags().StringVarP(&language, "language", "l", "bash", "Language tag for the code fence")
	return cmd
}

func newImageCommand(ctx *commandContext) *cobra.Command {
	var documentID string
	var alt string

	cmd := &cobra.Command{
		Use:   "image <path>",
		Short: "Append an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, err := ctx.newClient()
			if err != nil {
				return err
			}

			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read image %q: %w", path, err)
			}

			return remote.SendImage(cmd.Context(), documentID, path, alt, data)
		},
	}

	addDocumentFlag(cmd, &documentID)
	cmd.Flags().StringVar(&alt, "alt", "", "Alt text for the image reference")
	return cmd
}

func newPopCommand(ctx *commandContext) *cobra.Command {
	var documentID string

	cmd := &cobra.Command{
		Use:   "pop",
		Short: "Append an undo marker for the previous chunk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			remote, err := ctx.newClient()
			if err != nil {
				return err
			}
			return remote.Send(cmd.Context(), documentID, "pop", nil)
		},
	}

	addDocumentFlag(cmd, &documentID)
	return cmd
}

func addDocumentFlag(cmd *cobra.Command, documentID *string) {
	cmd.Flags().StringVarP(documentID, "document", "d", "", "Document id printed by 'showboat init'")
	_ = cmd.MarkFlagRequired("document")
}
