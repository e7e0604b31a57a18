package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func notesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes [file]",
		Short: "Generate patch notes from a bullet file (or stdin)",
		Long: `Run the generation pipeline once and print the result.

Examples:
  patchsmith notes changes.txt
  git log --oneline v1.0.. | patchsmith notes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			var raw []byte
			if len(args) == 1 {
				raw, err = os.ReadFile(args[0])
			} else {
				raw, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read bullets: %w", err)
			}

			engine := buildEngine(cfg)
			out, err := engine.GenerateNotes(cmd.Context(), string(raw))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	return cmd
}
