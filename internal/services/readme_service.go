package services

import (
	"context"
	"time"

	"github.com/getmentor/readme-generator/internal/models"
	"github.com/getmentor/readme-generator/internal/readme"
	apperrors "github.com/getmentor/readme-generator/pkg/errors"
	"github.com/getmentor/readme-generator/pkg/logger"
	"github.com/getmentor/readme-generator/pkg/metrics"
	"github.com/getmentor/readme-generator/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// sectionLabels maps optional section headings to metric label values
var sectionLabels = map[string]string{
	readme.HeadingExperience: models.FieldExperience,
	readme.HeadingProjects:   models.FieldProjects,
	readme.HeadingSocial:     models.FieldSocial,
}

// ReadmeService validates profile submissions and generates README documents
type ReadmeService struct{}

// NewReadmeService creates a new README service instance
func NewReadmeService() *ReadmeService {
	return &ReadmeService{}
}

// Generate validates input and returns the generated Markdown. Validation
// failures are reported in the response, not as an error.
func (s *ReadmeService) Generate(ctx context.Context, input models.ProfileInput) (*models.GenerateReadmeResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "readme.generate")
	defer span.End()

	start := time.Now()

	markdown, fieldErrors, err := s.render(ctx, input)
	if err != nil {
		metrics.ReadmeGenerations.WithLabelValues("error").Inc()
		return nil, err
	}
	if len(fieldErrors) > 0 {
		metrics.ReadmeGenerations.WithLabelValues("validation_failed").Inc()
		return &models.GenerateReadmeResponse{
			Success: false,
			Errors:  fieldErrors,
		}, nil
	}

	sections := readme.OptionalSections(input)
	for _, section := range sections {
		metrics.OptionalSections.WithLabelValues(sectionLabels[section]).Inc()
	}
	metrics.ReadmeGenerations.WithLabelValues("success").Inc()
	metrics.DocumentBytes.Observe(float64(len(markdown)))

	span.SetAttributes(attribute.Int("readme.optional_sections", len(sections)))

	logger.Debug("README generated",
		zap.Int("bytes", len(markdown)),
		zap.Int("optional_sections", len(sections)),
		zap.Float64("duration", metrics.MeasureDuration(start)),
	)

	return &models.GenerateReadmeResponse{
		Success:  true,
		Markdown: markdown,
	}, nil
}

// Download validates input and returns the README.md file for it. When
// validation fails the file is nil and the field errors are returned.
// Downloads are counted on their own, not as generations.
func (s *ReadmeService) Download(ctx context.Context, input models.ProfileInput) (*models.ReadmeFile, []models.FieldError, error) {
	ctx, span := tracing.StartSpan(ctx, "readme.download")
	defer span.End()

	markdown, fieldErrors, err := s.render(ctx, input)
	if err != nil {
		metrics.ReadmeDownloads.WithLabelValues("error").Inc()
		return nil, nil, err
	}
	if len(fieldErrors) > 0 {
		metrics.ReadmeDownloads.WithLabelValues("validation_failed").Inc()
		return nil, fieldErrors, nil
	}

	file := readme.File(markdown)
	metrics.ReadmeDownloads.WithLabelValues("success").Inc()
	logger.Debug("README download prepared", zap.Int("bytes", len(file.Content)))
	return &file, nil, nil
}

// render validates input and generates the document, annotating the span in ctx
func (s *ReadmeService) render(ctx context.Context, input models.ProfileInput) (string, []models.FieldError, error) {
	span := trace.SpanFromContext(ctx)

	if fieldErrors := s.validate(input); len(fieldErrors) > 0 {
		span.SetAttributes(attribute.Int("readme.validation_errors", len(fieldErrors)))
		return "", fieldErrors, nil
	}

	markdown, err := readme.Generate(input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")
		logger.LogError(err, "Failed to generate README")
		return "", nil, apperrors.InternalError("failed to generate README", err)
	}

	span.SetAttributes(attribute.Int("readme.bytes", len(markdown)))
	return markdown, nil, nil
}

func (s *ReadmeService) validate(input models.ProfileInput) []models.FieldError {
	fieldErrors := readme.Validate(input)
	for _, fe := range fieldErrors {
		metrics.ValidationFailures.WithLabelValues(fe.Field).Inc()
	}
	if len(fieldErrors) > 0 {
		logger.Debug("README submission rejected", zap.Any("errors", fieldErrors))
	}
	return fieldErrors
}
