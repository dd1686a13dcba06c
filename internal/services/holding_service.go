package services

import (
	"strings"

	"wealthdesk/internal/analytics"
	apperrors "wealthdesk/internal/errors"
	"wealthdesk/internal/models"
	"wealthdesk/internal/repository"
)

// holdingService handles holdings and the analytics computed over them.
type holdingService struct {
	repos *repository.Repositories
	now   repository.Clock
}

// NewHoldingService creates a new HoldingServicer.
func NewHoldingService(repos *repository.Repositories, now repository.Clock) HoldingServicer {
	return &holdingService{repos: repos, now: now}
}

func (s *holdingService) today() models.Date {
	return models.DateOf(s.now().UTC())
}

func (s *holdingService) GetClientHoldings(clientID string) ([]models.Holding, error) {
	if _, err := requireClient(s.repos, clientID); err != nil {
		return nil, err
	}
	holdings, err := s.repos.Holdings.ListByClient(clientID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holdings, nil
}

func (s *holdingService) GetHolding(id string) (*models.Holding, error) {
	h, err := s.repos.Holdings.Get(id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if h == nil {
		return nil, apperrors.ErrHoldingNotFound
	}
	return h, nil
}

func validateHolding(h models.Holding) error {
	if strings.TrimSpace(h.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "holding name is required")
	}
	if _, err := models.ParseAssetClass(string(h.AssetClass)); err != nil {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	if h.Units <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "units must be positive")
	}
	if h.AverageCost <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "average cost must be positive")
	}
	if h.CurrentPrice <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "current price must be positive")
	}
	if h.PurchaseDate.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase date is required")
	}
	return nil
}

// AddHolding records a new position for the client. A purchase date in the
// future is rejected.
func (s *holdingService) AddHolding(clientID string, h models.Holding) (*models.Holding, error) {
	if ac, err := models.ParseAssetClass(string(h.AssetClass)); err == nil {
		h.AssetClass = ac
	}
	if err := validateHolding(h); err != nil {
		return nil, err
	}
	if h.PurchaseDate.After(s.today()) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "purchase date cannot be in the future")
	}
	if _, err := requireClient(s.repos, clientID); err != nil {
		return nil, err
	}

	h.ClientID = clientID
	h.Name = strings.TrimSpace(h.Name)
	created, err := s.repos.Holdings.Add(h)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return created, nil
}

// UpdateHolding merges patch into the holding after checking the merged
// result is still a valid position.
func (s *holdingService) UpdateHolding(id string, patch models.HoldingPatch) (*models.Holding, error) {
	current, err := s.GetHolding(id)
	if err != nil {
		return nil, err
	}
	if patch.AssetClass != nil {
		ac, err := models.ParseAssetClass(string(*patch.AssetClass))
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		patch.AssetClass = &ac
	}
	merged := *current
	patch.Apply(&merged)
	if err := validateHolding(merged); err != nil {
		return nil, err
	}

	h, err := s.repos.Holdings.Update(id, patch)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if h == nil {
		return nil, apperrors.ErrHoldingNotFound
	}
	return h, nil
}

// UpdateHoldingPrice sets the current price. A new price adds one sample to
// the price history.
func (s *holdingService) UpdateHoldingPrice(id string, price float64) (*models.Holding, error) {
	if price <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current price must be positive")
	}
	return s.UpdateHolding(id, models.HoldingPatch{CurrentPrice: &price})
}

func (s *holdingService) DeleteHolding(id string) error {
	ok, err := s.repos.Holdings.Delete(id)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return apperrors.ErrHoldingNotFound
	}
	return nil
}

// GetPortfolio values the client's holdings as of today.
func (s *holdingService) GetPortfolio(clientID string) (*analytics.PortfolioPerformance, error) {
	holdings, err := s.GetClientHoldings(clientID)
	if err != nil {
		return nil, err
	}
	perf := analytics.EvaluatePortfolio(holdings, s.today())
	return &perf, nil
}

// GetFirmSummary totals every holding across all clients.
func (s *holdingService) GetFirmSummary() (*analytics.Summary, error) {
	holdings, err := s.repos.Holdings.List()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	summary := analytics.Summarize(holdings)
	return &summary, nil
}
