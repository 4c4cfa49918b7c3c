package readme

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/getmentor/readme-generator/internal/models"
)

// Section headings, in document order
const (
	HeadingSkills     = "## 🚀 Skills"
	HeadingExperience = "## 💼 Experience"
	HeadingProjects   = "## 🛠️ Projects"
	HeadingSocial     = "## 🔗 Connect with me"
)

// Download metadata for a generated document
const (
	FileName    = "README.md"
	ContentType = "text/markdown"
)

//go:embed templates/profile.md.tmpl
var profileTemplateText string

// text/template performs no escaping: user Markdown and HTML pass through verbatim.
var profileTemplate = template.Must(template.New("profile").Parse(profileTemplateText))

// Heading returns the first line of every document generated for name
func Heading(name string) string {
	return "# Hi there! 👋 I'm " + name
}

// Write renders the profile README for input into w.
func Write(w io.Writer, input models.ProfileInput) error {
	if err := profileTemplate.Execute(w, input); err != nil {
		return fmt.Errorf("render profile template: %w", err)
	}
	return nil
}

// Generate returns the profile README for input. The input is expected to
// have passed Validate; the result depends on nothing but the input.
func Generate(input models.ProfileInput) (string, error) {
	var b strings.Builder
	if err := Write(&b, input); err != nil {
		return "", err
	}
	return b.String(), nil
}

// OptionalSections lists the headings of the optional sections input produces
func OptionalSections(input models.ProfileInput) []string {
	var sections []string
	if input.Experience != "" {
		sections = append(sections, HeadingExperience)
	}
	if input.Projects != "" {
		sections = append(sections, HeadingProjects)
	}
	if input.Social != "" {
		sections = append(sections, HeadingSocial)
	}
	return sections
}

// File wraps a generated document as a README.md download
func File(markdown string) models.ReadmeFile {
	return models.ReadmeFile{
		FileName:    FileName,
		ContentType: ContentType,
		Content:     []byte(markdown),
	}
}
