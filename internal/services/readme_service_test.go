package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/getmentor/readme-generator/internal/models"
	"github.com/getmentor/readme-generator/internal/services"
	"github.com/getmentor/readme-generator/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() models.ProfileInput {
	return models.ProfileInput{
		Name:   "Ada",
		About:  "I build systems.",
		Skills: "- Rust\n- Go",
	}
}

func TestReadmeService_Generate_Success(t *testing.T) {
	service := services.NewReadmeService()
	before := testutil.ToFloat64(metrics.ReadmeGenerations.WithLabelValues("success"))

	resp, err := service.Generate(context.Background(), validProfile())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Empty(t, resp.Errors)
	assert.True(t, strings.HasPrefix(resp.Markdown, "# Hi there! 👋 I'm Ada\n"))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ReadmeGenerations.WithLabelValues("success")))
}

func TestReadmeService_Generate_ValidationFailure(t *testing.T) {
	service := services.NewReadmeService()
	before := testutil.ToFloat64(metrics.ValidationFailures.WithLabelValues("name"))

	input := validProfile()
	input.Name = "A"

	resp, err := service.Generate(context.Background(), input)
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Empty(t, resp.Markdown)
	assert.Equal(t, []models.FieldError{
		{Field: "name", Message: "Name must be at least 2 characters"},
	}, resp.Errors)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ValidationFailures.WithLabelValues("name")))
}

func TestReadmeService_Download(t *testing.T) {
	service := services.NewReadmeService()

	file, fieldErrors, err := service.Download(context.Background(), validProfile())
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Empty(t, fieldErrors)

	resp, err := service.Generate(context.Background(), validProfile())
	require.NoError(t, err)

	assert.Equal(t, "README.md", file.FileName)
	assert.Equal(t, "text/markdown", file.ContentType)
	assert.Equal(t, resp.Markdown, string(file.Content))
}

func TestReadmeService_Download_ValidationFailure(t *testing.T) {
	service := services.NewReadmeService()

	file, fieldErrors, err := service.Download(context.Background(), models.ProfileInput{})
	require.NoError(t, err)
	assert.Nil(t, file)
	assert.Len(t, fieldErrors, 3)
}

func TestReadmeService_Download_CountedSeparatelyFromGenerations(t *testing.T) {
	service := services.NewReadmeService()
	generationsBefore := testutil.ToFloat64(metrics.ReadmeGenerations.WithLabelValues("success"))
	downloadsBefore := testutil.ToFloat64(metrics.ReadmeDownloads.WithLabelValues("success"))

	file, _, err := service.Download(context.Background(), validProfile())
	require.NoError(t, err)
	require.NotNil(t, file)

	assert.Equal(t, generationsBefore, testutil.ToFloat64(metrics.ReadmeGenerations.WithLabelValues("success")))
	assert.Equal(t, downloadsBefore+1, testutil.ToFloat64(metrics.ReadmeDownloads.WithLabelValues("success")))
}
