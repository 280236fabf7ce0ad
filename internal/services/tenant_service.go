package services

import (
	"context"
	"fmt"

	"tenanttheme/internal/models"
)

type TenantSummaryStore interface {
	ListSummaries(ctx context.Context) ([]models.TenantSummary, error)
}

type TenantService struct {
	tenants TenantSummaryStore
}

func NewTenantService(tenants TenantSummaryStore) *TenantService {
	return &TenantService{tenants: tenants}
}

// ListTenants returns one summary per tenant in ascending id order.
func (s *TenantService) ListTenants(ctx context.Context) ([]models.TenantSummary, error) {
	tenants, err := s.tenants.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	if tenants == nil {
		tenants = []models.TenantSummary{}
	}
	return tenants, nil
}
