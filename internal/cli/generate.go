package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/getmentor/readme-generator/internal/readme"
	"github.com/getmentor/readme-generator/pkg/logger"
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Validate the profile and write the README",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	addProfileFlags(cmd)
	cmd.Flags().StringP("out", "o", readme.FileName, "output file")
	cmd.Flags().Bool("stdout", false, "print the document instead of writing a file")
	cmd.Flags().Bool("copy", false, "also copy the document to the clipboard")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	draft, err := loadDraft(cmd)
	if err != nil {
		return err
	}

	fieldErrors, err := draft.Submit()
	if err != nil {
		return err
	}
	if len(fieldErrors) > 0 {
		printFieldErrors(cmd.ErrOrStderr(), fieldErrors)
		return ErrValidationFailed
	}
	markdown := draft.Document().Markdown

	toStdout, _ := cmd.Flags().GetBool("stdout")
	if toStdout {
		if _, err := fmt.Fprint(cmd.OutOrStdout(), markdown); err != nil {
			return err
		}
	} else {
		out, _ := cmd.Flags().GetString("out")
		if err := os.WriteFile(out, []byte(markdown), 0o644); err != nil { //nolint:gosec // README is meant to be readable
			return fmt.Errorf("write %s: %w", out, err)
		}
		logger.Info("README written", zap.String("path", out), zap.Int("bytes", len(markdown)))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
	}

	copyDoc, _ := cmd.Flags().GetBool("copy")
	if copyDoc {
		if err := writeClipboard(markdown); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Copied!")
	}
	return nil
}
