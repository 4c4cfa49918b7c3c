package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/getmentor/readme-generator/internal/models"
	"github.com/getmentor/readme-generator/internal/readme"
	"github.com/getmentor/readme-generator/pkg/logger"
)

var fieldUsage = map[string]string{
	models.FieldName:       "your name (at least 2 characters)",
	models.FieldAbout:      "a short introduction (at least 10 characters)",
	models.FieldSkills:     "skills, usually a Markdown list (at least 2 characters)",
	models.FieldExperience: "work experience (optional)",
	models.FieldProjects:   "projects (optional)",
	models.FieldSocial:     "social links (optional)",
}

// addProfileFlags registers one flag per profile field plus --from
func addProfileFlags(cmd *cobra.Command) {
	for _, field := range models.ProfileFields {
		cmd.Flags().String(field, "", fieldUsage[field])
	}
	cmd.Flags().String("from", "", "profile file (yaml|json|toml); flags override its values")
}

// loadDraft fills a draft from the profile file named by --from, then from
// any profile flags that were set explicitly.
func loadDraft(cmd *cobra.Command) (*readme.Draft, error) {
	v := viper.New()

	from, _ := cmd.Flags().GetString("from")
	if from != "" {
		v.SetConfigFile(from)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read profile %s: %w", from, err)
		}
		logger.Debug("Loaded profile file", zap.String("path", from))
	}

	for _, field := range models.ProfileFields {
		if err := v.BindPFlag(field, cmd.Flags().Lookup(field)); err != nil {
			return nil, err
		}
	}

	draft := readme.NewDraft()
	for _, field := range models.ProfileFields {
		if err := draft.Set(field, v.GetString(field)); err != nil {
			return nil, err
		}
	}
	return draft, nil
}

// printFieldErrors writes one "field: message" line per error
func printFieldErrors(w io.Writer, fieldErrors []models.FieldError) {
	for _, fe := range fieldErrors {
		fmt.Fprintf(w, "%s: %s\n", fe.Field, fe.Message)
	}
}
