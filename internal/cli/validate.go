package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/getmentor/readme-generator/internal/readme"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the profile without generating anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := loadDraft(cmd)
			if err != nil {
				return err
			}
			if fieldErrors := readme.Validate(draft.Snapshot()); len(fieldErrors) > 0 {
				printFieldErrors(cmd.ErrOrStderr(), fieldErrors)
				return ErrValidationFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	addProfileFlags(cmd)
	return cmd
}
