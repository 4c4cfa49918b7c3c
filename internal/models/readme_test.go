package models_test

import (
	"testing"

	"github.com/getmentor/readme-generator/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestProfileInput_Get(t *testing.T) {
	input := models.ProfileInput{
		Name:       "Ada",
		About:      "I build systems.",
		Skills:     "- Go",
		Experience: "exp",
		Projects:   "proj",
		Social:     "links",
	}

	tests := []struct {
		field    string
		expected string
	}{
		{field: models.FieldName, expected: "Ada"},
		{field: models.FieldAbout, expected: "I build systems."},
		{field: models.FieldSkills, expected: "- Go"},
		{field: models.FieldExperience, expected: "exp"},
		{field: models.FieldProjects, expected: "proj"},
		{field: models.FieldSocial, expected: "links"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := input.Get(tt.field)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, ok := input.Get("avatar")
	assert.False(t, ok)
}

func TestProfileFields_CoverEveryField(t *testing.T) {
	assert.Len(t, models.ProfileFields, 6)
	for _, field := range models.ProfileFields {
		_, ok := models.ProfileInput{}.Get(field)
		assert.True(t, ok, field)
	}
}

func TestGeneratedDocument_IsEmpty(t *testing.T) {
	assert.True(t, models.GeneratedDocument{}.IsEmpty())
	assert.False(t, models.GeneratedDocument{Markdown: "# Hi"}.IsEmpty())
}
