// Package web holds the embedded page templates and static assets for the
// README form.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/getmentor/readme-generator/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template names
const (
	IndexTemplate = "index.html"
)

// Tabs on the index page
const (
	TabForm    = "form"
	TabPreview = "preview"
)

// EmptyPreview is shown on the Preview tab until a document exists
const EmptyPreview = "Your README preview will appear here..."

// FieldSpec describes how a profile field is presented on the form
type FieldSpec struct {
	Name        string
	Label       string
	Placeholder string
	Multiline   bool
}

// Fields lists the form inputs in display order
var Fields = []FieldSpec{
	{Name: models.FieldName, Label: "Name", Placeholder: "John Doe"},
	{Name: models.FieldAbout, Label: "About", Placeholder: "I'm a passionate developer...", Multiline: true},
	{Name: models.FieldSkills, Label: "Skills", Placeholder: "- JavaScript\n- React\n- Node.js", Multiline: true},
	{Name: models.FieldExperience, Label: "Experience", Placeholder: "### Company Name\nPosition | Duration\n- Accomplishment 1\n- Accomplishment 2", Multiline: true},
	{Name: models.FieldProjects, Label: "Projects", Placeholder: "### Project Name\nDescription of the project\n- Tech stack used\n- Key features", Multiline: true},
	{Name: models.FieldSocial, Label: "Social Links", Placeholder: "- [LinkedIn](your-linkedin-url)\n- [Twitter](your-twitter-url)\n- [Portfolio](your-portfolio-url)", Multiline: true},
}

// FieldView is a form field ready for rendering
type FieldView struct {
	FieldSpec
	Value string
	Error string
}

// Page is the data rendered by the index template
type Page struct {
	Tab      string
	Fields   []FieldView
	Accepted []FieldView
	Markdown string
}

// HasDocument reports whether the Preview tab has a document to act on
func (p Page) HasDocument() bool {
	return p.Markdown != ""
}

// NewPage builds the page for the current draft values, the last accepted
// input and its generated document.
func NewPage(tab string, draft models.ProfileInput, fieldErrors []models.FieldError, accepted models.ProfileInput, markdown string) Page {
	messages := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		if _, seen := messages[fe.Field]; !seen {
			messages[fe.Field] = fe.Message
		}
	}

	page := Page{Tab: tab, Markdown: markdown}
	for _, spec := range Fields {
		value, _ := draft.Get(spec.Name)
		page.Fields = append(page.Fields, FieldView{FieldSpec: spec, Value: value, Error: messages[spec.Name]})

		acceptedValue, _ := accepted.Get(spec.Name)
		page.Accepted = append(page.Accepted, FieldView{FieldSpec: spec, Value: acceptedValue})
	}
	return page
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// MustTemplates is Templates for use during startup
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Static returns the embedded asset tree rooted at static/
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
