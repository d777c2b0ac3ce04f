package service

import (
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/constants"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/repository"
)

// SalesService exposes the supplier sales reporting.
type SalesService struct {
	salesRepo repository.SalesRepository
}

// NewSalesService creates the sales service.
func NewSalesService(salesRepo repository.SalesRepository) *SalesService {
	return &SalesService{salesRepo: salesRepo}
}

// Evolution returns the supplier's revenue series bucketed by period.
// An unknown period silently falls back to day, matching the query
// parameter contract of the reporting endpoint.
func (s *SalesService) Evolution(supplierID uint, period, address string) ([]repository.SalesBucket, error) {
	filter := repository.SalesFilter{
		SupplierID: supplierID,
		Period:     constants.NormalizeSalesPeriod(period),
		Address:    address,
	}
	buckets, err := s.salesRepo.Evolution(filter)
	if err != nil {
		return nil, err
	}
	if buckets == nil {
		buckets = []repository.SalesBucket{}
	}
	return buckets, nil
}
