package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/services"
)

// FolioHandler handles client folios
type FolioHandler struct {
	folioService services.FolioServicer
}

// NewFolioHandler creates a new FolioHandler
func NewFolioHandler(folioService services.FolioServicer) *FolioHandler {
	return &FolioHandler{folioService: folioService}
}

// CreateFolioRequest represents the request body for adding a folio
type CreateFolioRequest struct {
	FolioNumber string `json:"folio_number" binding:"required,max=100"`
	Provider    string `json:"provider" binding:"required,max=200"`
	Notes       string `json:"notes" binding:"max=1000"`
}

// UpdateFolioRequest represents the request body for editing a folio
type UpdateFolioRequest struct {
	FolioNumber *string `json:"folio_number" binding:"omitempty,max=100"`
	Provider    *string `json:"provider" binding:"omitempty,max=200"`
	Notes       *string `json:"notes" binding:"omitempty,max=1000"`
}

// ListFolios handles listing a client's folios
// @Summary     List folios
// @Tags        folios
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Client ID"
// @Success     200 {object} map[string][]models.Folio "Folios keyed by folios"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/folios [get]
func (h *FolioHandler) ListFolios(c *gin.Context) {
	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	folios, err := h.folioService.GetClientFolios(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"folios": folios})
}

// AddFolio handles adding a folio to a client
// @Summary     Add folio
// @Tags        folios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Client ID"
// @Param       request body CreateFolioRequest true "Folio"
// @Success     201 {object} models.Folio
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/folios [post]
func (h *FolioHandler) AddFolio(c *gin.Context) {
	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	folio, err := h.folioService.AddFolio(clientID, models.Folio{
		FolioNumber: req.FolioNumber, Provider: req.Provider, Notes: req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, folio)
}

// UpdateFolio handles editing a folio
// @Summary     Update folio
// @Tags        folios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Folio ID"
// @Param       request body UpdateFolioRequest true "Fields to change"
// @Success     200 {object} models.Folio
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Folio not found"
// @Router      /folios/{id} [put]
func (h *FolioHandler) UpdateFolio(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	folio, err := h.folioService.UpdateFolio(id, models.FolioPatch{
		FolioNumber: req.FolioNumber, Provider: req.Provider, Notes: req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, folio)
}

// DeleteFolio handles deleting a folio
// @Summary     Delete folio
// @Tags        folios
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Folio ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Folio not found"
// @Router      /folios/{id} [delete]
func (h *FolioHandler) DeleteFolio(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.folioService.DeleteFolio(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Folio deleted successfully"})
}
