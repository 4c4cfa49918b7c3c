package handlers_test

import (
	"context"

	"github.com/getmentor/readme-generator/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockReadmeService implements ReadmeServiceInterface for testing
type MockReadmeService struct {
	mock.Mock
}

func (m *MockReadmeService) Generate(ctx context.Context, input models.ProfileInput) (*models.GenerateReadmeResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GenerateReadmeResponse), args.Error(1)
}

func (m *MockReadmeService) Download(ctx context.Context, input models.ProfileInput) (*models.ReadmeFile, []models.FieldError, error) {
	args := m.Called(ctx, input)
	var file *models.ReadmeFile
	if f := args.Get(0); f != nil {
		file = f.(*models.ReadmeFile)
	}
	var fieldErrors []models.FieldError
	if fe := args.Get(1); fe != nil {
		fieldErrors = fe.([]models.FieldError)
	}
	return file, fieldErrors, args.Error(2)
}
