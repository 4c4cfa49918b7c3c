package handlers

import (
	"mime"
	"net/http"

	"github.com/getmentor/readme-generator/internal/models"
	"github.com/getmentor/readme-generator/internal/services"
	"github.com/getmentor/readme-generator/internal/web"
	"github.com/gin-gonic/gin"
)

// PageHandler serves the two-tab README form. The page carries its own state:
// the fields being edited and, in hidden inputs, the last accepted profile.
type PageHandler struct {
	service services.ReadmeServiceInterface
}

func NewPageHandler(service services.ReadmeServiceInterface) *PageHandler {
	return &PageHandler{service: service}
}

// Index renders an empty form
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, web.IndexTemplate, web.NewPage(web.TabForm, models.ProfileInput{}, nil, models.ProfileInput{}, ""))
}

// Submit validates the posted form. On success the Preview tab shows the new
// document; on failure the form shows the errors and the prior document stays.
func (h *PageHandler) Submit(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		status, message := bindStatus(err)
		attachError(c, err)
		c.String(status, message)
		return
	}

	current, _ := profileFromForm(c, "")
	input := current.Snapshot()

	accepted, found := profileFromForm(c, acceptedPrefix)
	if found {
		// Rebuilds the prior document; a tampered snapshot just yields none
		if _, err := accepted.Submit(); err != nil {
			attachError(c, err)
		}
	}
	acceptedInput := models.ProfileInput{}
	if accepted.HasDocument() {
		acceptedInput = accepted.Snapshot()
	}

	resp, err := h.service.Generate(c.Request.Context(), input)
	if err != nil {
		attachError(c, err)
		c.HTML(http.StatusInternalServerError, web.IndexTemplate,
			web.NewPage(web.TabForm, input, nil, acceptedInput, accepted.Document().Markdown))
		return
	}

	if !resp.Success {
		attachError(c, validationError(resp.Errors))
		c.HTML(http.StatusBadRequest, web.IndexTemplate,
			web.NewPage(web.TabForm, input, resp.Errors, acceptedInput, accepted.Document().Markdown))
		return
	}

	c.HTML(http.StatusOK, web.IndexTemplate, web.NewPage(web.TabPreview, input, nil, input, resp.Markdown))
}

// Download answers with README.md generated from the posted accepted profile
func (h *PageHandler) Download(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		status, message := bindStatus(err)
		attachError(c, err)
		c.String(status, message)
		return
	}

	draft, _ := profileFromForm(c, "")
	input := draft.Snapshot()

	file, fieldErrors, err := h.service.Download(c.Request.Context(), input)
	if err != nil {
		attachError(c, err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(fieldErrors) > 0 {
		attachError(c, validationError(fieldErrors))
		c.HTML(http.StatusBadRequest, web.IndexTemplate,
			web.NewPage(web.TabForm, input, fieldErrors, models.ProfileInput{}, ""))
		return
	}

	sendFile(c, file)
}

// sendFile writes file as an attachment
func sendFile(c *gin.Context, file *models.ReadmeFile) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": file.FileName}))
	c.Data(http.StatusOK, file.ContentType+"; charset=utf-8", file.Content)
}
