package handlers

import (
	"net/http"

	"github.com/getmentor/readme-generator/internal/models"
	"github.com/getmentor/readme-generator/internal/services"
	"github.com/gin-gonic/gin"
)

type ReadmeHandler struct {
	service services.ReadmeServiceInterface
}

func NewReadmeHandler(service services.ReadmeServiceInterface) *ReadmeHandler {
	return &ReadmeHandler{service: service}
}

func (h *ReadmeHandler) Generate(c *gin.Context) {
	var input models.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		status, message := bindStatus(err)
		respondError(c, status, message, err)
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), input)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	if !resp.Success {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", resp.Errors, validationError(resp.Errors))
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ReadmeHandler) Download(c *gin.Context) {
	var input models.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		status, message := bindStatus(err)
		respondError(c, status, message, err)
		return
	}

	file, fieldErrors, err := h.service.Download(c.Request.Context(), input)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	if len(fieldErrors) > 0 {
		respondErrorWithDetails(c, http.StatusBadRequest, "Validation failed", fieldErrors, validationError(fieldErrors))
		return
	}

	sendFile(c, file)
}
