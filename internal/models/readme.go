package models

// Profile field names, in the order they appear on the form and in validation output
const (
	FieldName       = "name"
	FieldAbout      = "about"
	FieldSkills     = "skills"
	FieldExperience = "experience"
	FieldProjects   = "projects"
	FieldSocial     = "social"
)

// ProfileFields lists every ProfileInput field in form order
var ProfileFields = []string{
	FieldName,
	FieldAbout,
	FieldSkills,
	FieldExperience,
	FieldProjects,
	FieldSocial,
}

// ProfileInput is the user-supplied record a README is generated from.
// Rules live in validate tags so gin binding only decodes and readme.Validate
// is the single place they are enforced.
type ProfileInput struct {
	Name       string `json:"name" form:"name" mapstructure:"name" validate:"min=2"`
	About      string `json:"about" form:"about" mapstructure:"about" validate:"min=10"`
	Skills     string `json:"skills" form:"skills" mapstructure:"skills" validate:"min=2"`
	Experience string `json:"experience" form:"experience" mapstructure:"experience"`
	Projects   string `json:"projects" form:"projects" mapstructure:"projects"`
	Social     string `json:"social" form:"social" mapstructure:"social"`
}

// Get returns the value of the named field
func (p ProfileInput) Get(field string) (string, bool) {
	switch field {
	case FieldName:
		return p.Name, true
	case FieldAbout:
		return p.About, true
	case FieldSkills:
		return p.Skills, true
	case FieldExperience:
		return p.Experience, true
	case FieldProjects:
		return p.Projects, true
	case FieldSocial:
		return p.Social, true
	default:
		return "", false
	}
}

// FieldError is a single per-field validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// GeneratedDocument is the Markdown produced from an accepted ProfileInput
type GeneratedDocument struct {
	Markdown string
}

// IsEmpty reports whether nothing has been generated
func (d GeneratedDocument) IsEmpty() bool {
	return d.Markdown == ""
}

// GenerateReadmeResponse is returned by the JSON generate endpoint
type GenerateReadmeResponse struct {
	Success  bool         `json:"success"`
	Markdown string       `json:"markdown,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// ReadmeFile is a downloadable rendition of a generated document
type ReadmeFile struct {
	FileName    string
	ContentType string
	Content     []byte
}
