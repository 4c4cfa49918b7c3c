package services

import (
	"context"

	"github.com/getmentor/readme-generator/internal/models"
)

// ReadmeServiceInterface defines the interface for README generation
type ReadmeServiceInterface interface {
	Generate(ctx context.Context, input models.ProfileInput) (*models.GenerateReadmeResponse, error)
	Download(ctx context.Context, input models.ProfileInput) (*models.ReadmeFile, []models.FieldError, error)
}

// Ensure services implement their interfaces
var _ ReadmeServiceInterface = (*ReadmeService)(nil)
