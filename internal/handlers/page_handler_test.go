package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/getmentor/readme-generator/internal/handlers"
	"github.com/getmentor/readme-generator/internal/models"
	"github.com/getmentor/readme-generator/internal/readme"
	"github.com/getmentor/readme-generator/internal/services"
	"github.com/getmentor/readme-generator/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPageRouter(service services.ReadmeServiceInterface) *gin.Engine {
	handler := handlers.NewPageHandler(service)
	router := gin.New()
	router.SetHTMLTemplate(web.MustTemplates())
	router.GET("/", handler.Index)
	router.POST("/", handler.Submit)
	router.POST("/download", handler.Download)
	return router
}

func formValues(input models.ProfileInput, prefix string, into url.Values) url.Values {
	if into == nil {
		into = url.Values{}
	}
	for _, field := range models.ProfileFields {
		v, _ := input.Get(field)
		into.Set(prefix+field, v)
	}
	return into
}

func postForm(router http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPageHandler_Index(t *testing.T) {
	router := newPageRouter(services.NewReadmeService())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), web.EmptyPreview)
	assert.NotContains(t, w.Body.String(), "Download README.md")
}

func TestPageHandler_Submit_Success(t *testing.T) {
	router := newPageRouter(services.NewReadmeService())

	w := postForm(router, "/", formValues(adaProfile(), "", formValues(models.ProfileInput{}, "accepted_", nil)))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="panel active" id="panel-preview"`)
	assert.Contains(t, body, "# Hi there! 👋 I&#39;m Ada")
	assert.Contains(t, body, "Download README.md")
	assert.Contains(t, body, "Copy to Clipboard")
	assert.Contains(t, body, `name="accepted_name" value="Ada"`)
}

func TestPageHandler_Submit_ValidationFailureKeepsPriorDocument(t *testing.T) {
	router := newPageRouter(services.NewReadmeService())

	current := adaProfile()
	current.Name = "A"
	current.About = "short"
	values := formValues(current, "", formValues(adaProfile(), "accepted_", nil))

	w := postForm(router, "/", values)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Name must be at least 2 characters")
	assert.Contains(t, body, "About section must be at least 10 characters")
	assert.NotContains(t, body, "Please enter your skills")
	assert.Contains(t, body, `class="panel active" id="panel-form"`)
	// the document generated from the accepted profile is still shown
	assert.Contains(t, body, "# Hi there! 👋 I&#39;m Ada")
	assert.Contains(t, body, "Download README.md")
}

func TestPageHandler_Submit_ValidationFailureWithoutPriorDocument(t *testing.T) {
	router := newPageRouter(services.NewReadmeService())

	w := postForm(router, "/", formValues(models.ProfileInput{}, "", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter your skills")
	assert.Contains(t, w.Body.String(), web.EmptyPreview)
}

func TestPageHandler_Submit_NormalizesBrowserNewlines(t *testing.T) {
	mockService := new(MockReadmeService)
	mockService.On("Generate", mock.Anything, adaProfile()).Return(&models.GenerateReadmeResponse{
		Success:  true,
		Markdown: "ok",
	}, nil)

	input := adaProfile()
	input.Skills = "- Rust\r\n- Go"
	w := postForm(newPageRouter(mockService), "/", formValues(input, "", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestPageHandler_Submit_ServiceError(t *testing.T) {
	mockService := new(MockReadmeService)
	mockService.On("Generate", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	w := postForm(newPageRouter(mockService), "/", formValues(adaProfile(), "", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPageHandler_Download(t *testing.T) {
	router := newPageRouter(services.NewReadmeService())

	w := postForm(router, "/download", formValues(adaProfile(), "", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=README.md", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/markdown; charset=utf-8", w.Header().Get("Content-Type"))

	want, err := readme.Generate(adaProfile())
	require.NoError(t, err)
	assert.Equal(t, want, w.Body.String())
}

func TestPageHandler_Download_Invalid(t *testing.T) {
	router := newPageRouter(services.NewReadmeService())

	w := postForm(router, "/download", formValues(models.ProfileInput{Name: "Ada"}, "", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "Please enter your skills")
}
