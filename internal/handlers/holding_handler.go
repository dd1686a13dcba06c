package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/services"
)

// HoldingHandler handles holdings and portfolio analytics
type HoldingHandler struct {
	holdingService services.HoldingServicer
	auditService   services.AuditServicer
}

// NewHoldingHandler creates a new HoldingHandler
func NewHoldingHandler(holdingService services.HoldingServicer, auditService services.AuditServicer) *HoldingHandler {
	return &HoldingHandler{holdingService: holdingService, auditService: auditService}
}

// CreateHoldingRequest represents the request body for adding a holding
type CreateHoldingRequest struct {
	AssetClass   models.AssetClass `json:"asset_class" binding:"required,asset_class" example:"Mutual Funds"`
	Name         string            `json:"name" binding:"required,max=200"`
	PurchaseDate models.Date       `json:"purchase_date" swaggertype:"string" example:"2023-04-01"`
	Units        float64           `json:"units" binding:"required,gt=0"`
	AverageCost  float64           `json:"average_cost" binding:"required,gt=0"`
	CurrentPrice float64           `json:"current_price" binding:"required,gt=0"`
	Notes        string            `json:"notes" binding:"max=1000"`
}

// UpdateHoldingRequest represents the request body for editing a holding
type UpdateHoldingRequest struct {
	AssetClass   *models.AssetClass `json:"asset_class" binding:"omitempty,asset_class"`
	Name         *string            `json:"name" binding:"omitempty,max=200"`
	PurchaseDate *models.Date       `json:"purchase_date" swaggertype:"string"`
	Units        *float64           `json:"units" binding:"omitempty,gt=0"`
	AverageCost  *float64           `json:"average_cost" binding:"omitempty,gt=0"`
	CurrentPrice *float64           `json:"current_price" binding:"omitempty,gt=0"`
	Notes        *string            `json:"notes" binding:"omitempty,max=1000"`
}

// UpdatePriceRequest represents the request body for a price update
type UpdatePriceRequest struct {
	CurrentPrice float64 `json:"current_price" binding:"required,gt=0"`
}

// ListHoldings handles listing a client's holdings
// @Summary     List holdings
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Client ID"
// @Success     200 {object} map[string][]models.Holding "Holdings keyed by holdings"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/holdings [get]
func (h *HoldingHandler) ListHoldings(c *gin.Context) {
	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	holdings, err := h.holdingService.GetClientHoldings(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"holdings": holdings})
}

// AddHolding handles adding a holding to a client
// @Summary     Add holding
// @Description Record a position. The price history starts with the purchase cost and today's price.
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Client ID"
// @Param       request body CreateHoldingRequest true "Holding"
// @Success     201 {object} models.Holding
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/holdings [post]
func (h *HoldingHandler) AddHolding(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.holdingService.AddHolding(clientID, models.Holding{
		AssetClass: req.AssetClass, Name: req.Name, PurchaseDate: req.PurchaseDate,
		Units: req.Units, AverageCost: req.AverageCost, CurrentPrice: req.CurrentPrice, Notes: req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor, "CREATE_HOLDING", "holding", holding.ID, c.ClientIP(),
		map[string]any{"client_id": clientID, "asset_class": holding.AssetClass})
	c.JSON(http.StatusCreated, holding)
}

// GetHolding handles fetching a single holding
// @Summary     Get holding
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Success     200 {object} models.Holding
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /holdings/{id} [get]
func (h *HoldingHandler) GetHolding(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	holding, err := h.holdingService.GetHolding(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, holding)
}

// UpdateHolding handles editing a holding
// @Summary     Update holding
// @Description Change the given fields. A new current price appends one price history sample.
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Holding ID"
// @Param       request body UpdateHoldingRequest true "Fields to change"
// @Success     200 {object} models.Holding
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /holdings/{id} [put]
func (h *HoldingHandler) UpdateHolding(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.holdingService.UpdateHolding(id, models.HoldingPatch{
		AssetClass: req.AssetClass, Name: req.Name, PurchaseDate: req.PurchaseDate,
		Units: req.Units, AverageCost: req.AverageCost, CurrentPrice: req.CurrentPrice, Notes: req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, holding)
}

// UpdatePrice handles a current price update
// @Summary     Update holding price
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Holding ID"
// @Param       request body UpdatePriceRequest true "New price"
// @Success     200 {object} models.Holding
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /holdings/{id}/price [patch]
func (h *HoldingHandler) UpdatePrice(c *gin.Context) {
	actor, err := getActor(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.holdingService.UpdateHoldingPrice(id, req.CurrentPrice)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actor, "UPDATE_HOLDING_PRICE", "holding", id, c.ClientIP(),
		map[string]any{"current_price": req.CurrentPrice})
	c.JSON(http.StatusOK, holding)
}

// DeleteHolding handles deleting a holding
// @Summary     Delete holding
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Holding ID"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} ErrorResponse "Holding not found"
// @Router      /holdings/{id} [delete]
func (h *HoldingHandler) DeleteHolding(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.holdingService.DeleteHolding(id); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Holding deleted successfully"})
}

// GetPortfolio handles a client's portfolio analytics
// @Summary     Client portfolio
// @Description Totals, asset allocation, absolute return, CAGR and the XIRR approximation, plus per-holding performance
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Client ID"
// @Success     200 {object} analytics.PortfolioPerformance
// @Failure     404 {object} ErrorResponse "Client not found"
// @Router      /clients/{id}/portfolio [get]
func (h *HoldingHandler) GetPortfolio(c *gin.Context) {
	clientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	perf, err := h.holdingService.GetPortfolio(clientID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, perf)
}

// GetFirmSummary handles the firm-wide asset summary
// @Summary     Firm summary
// @Description Invested and current value of every holding, by asset class
// @Tags        holdings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} analytics.Summary
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /portfolio/summary [get]
func (h *HoldingHandler) GetFirmSummary(c *gin.Context) {
	summary, err := h.holdingService.GetFirmSummary()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
