package handlers

import (
	"strings"

	"github.com/getmentor/readme-generator/internal/models"
	"github.com/getmentor/readme-generator/internal/readme"
	"github.com/gin-gonic/gin"
)

// acceptedPrefix marks hidden form fields carrying the last accepted profile
const acceptedPrefix = "accepted_"

// normalizeNewlines undoes the CRLF conversion browsers apply to form values
func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// profileFromForm reads the profile fields named prefix+field from a posted
// form into a draft. It reports false when none of the fields was sent.
func profileFromForm(c *gin.Context, prefix string) (*readme.Draft, bool) {
	draft := readme.NewDraft()
	found := false
	for _, field := range models.ProfileFields {
		value, ok := c.GetPostForm(prefix + field)
		if !ok {
			continue
		}
		found = true
		// field comes from models.ProfileFields, so Set cannot fail
		_ = draft.Set(field, normalizeNewlines(value)) //nolint:errcheck
	}
	return draft, found
}

