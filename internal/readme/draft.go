package readme

import (
	"github.com/getmentor/readme-generator/internal/models"
	apperrors "github.com/getmentor/readme-generator/pkg/errors"
)

// Draft is the form's display state: the profile being edited plus the last
// document generated from it. It is owned by a single display and is not
// safe for concurrent use.
type Draft struct {
	input    models.ProfileInput
	document models.GeneratedDocument
}

// NewDraft returns an empty draft
func NewDraft() *Draft {
	return &Draft{}
}

func (d *Draft) SetName(v string)       { d.input.Name = v }
func (d *Draft) SetAbout(v string)      { d.input.About = v }
func (d *Draft) SetSkills(v string)     { d.input.Skills = v }
func (d *Draft) SetExperience(v string) { d.input.Experience = v }
func (d *Draft) SetProjects(v string)   { d.input.Projects = v }
func (d *Draft) SetSocial(v string)     { d.input.Social = v }

// Set updates a field by its form name
func (d *Draft) Set(field, value string) error {
	switch field {
	case models.FieldName:
		d.SetName(value)
	case models.FieldAbout:
		d.SetAbout(value)
	case models.FieldSkills:
		d.SetSkills(value)
	case models.FieldExperience:
		d.SetExperience(value)
	case models.FieldProjects:
		d.SetProjects(value)
	case models.FieldSocial:
		d.SetSocial(value)
	default:
		return apperrors.UnknownFieldError(field)
	}
	return nil
}

// Load replaces every field with the values from input
func (d *Draft) Load(input models.ProfileInput) {
	d.input = input
}

// Snapshot returns a copy of the current input
func (d *Draft) Snapshot() models.ProfileInput {
	return d.input
}

// Submit validates the current input and, when it is accepted, replaces the
// document with one generated from it. On rejection the previous document
// is kept and the per-field errors are returned.
func (d *Draft) Submit() ([]models.FieldError, error) {
	snapshot := d.Snapshot()
	if fieldErrors := Validate(snapshot); len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	markdown, err := Generate(snapshot)
	if err != nil {
		return nil, err
	}
	d.document = models.GeneratedDocument{Markdown: markdown}
	return nil, nil
}

// Document returns the last generated document
func (d *Draft) Document() models.GeneratedDocument {
	return d.document
}

// HasDocument reports whether a submission has been accepted yet
func (d *Draft) HasDocument() bool {
	return !d.document.IsEmpty()
}
