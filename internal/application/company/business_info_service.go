package company

import (
	"context"
	"errors"

	"github.com/inventorypro/backend/internal/domain/company"
	"github.com/inventorypro/backend/internal/domain/shared"
)

// BusinessInfoRequest replaces the business info record wholesale
type BusinessInfoRequest struct {
	Name    string
	Address string
	City    string
	State   string
	ZipCode string
	Phone   string
	Email   string
	Website string
	TaxID   string
	Logo    string
}

// BusinessInfoResponse represents the business info in API responses
type BusinessInfoResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Website string `json:"website"`
	TaxID   string `json:"tax_id"`
	Logo    string `json:"logo"`
}

// BusinessInfoService manages the singleton business info record
type BusinessInfoService struct {
	businessRepo company.BusinessInfoRepository
}

// NewBusinessInfoService creates a new BusinessInfoService
func NewBusinessInfoService(businessRepo company.BusinessInfoRepository) *BusinessInfoService {
	return &BusinessInfoService{businessRepo: businessRepo}
}

// Get returns the business info record
func (s *BusinessInfoService) Get(ctx context.Context) (*BusinessInfoResponse, error) {
	info, err := s.businessRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return toResponse(info), nil
}

// Replace overwrites the record wholesale, creating it on first use
func (s *BusinessInfoService) Replace(ctx context.Context, req BusinessInfoRequest) (*BusinessInfoResponse, error) {
	info, err := s.businessRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		info, err = company.NewBusinessInfo(req.Name, req.Address, req.City, req.State, req.ZipCode, req.Phone, req.Email, req.Website, req.TaxID, req.Logo)
		if err != nil {
			return nil, err
		}
	} else if err := info.Replace(req.Name, req.Address, req.City, req.State, req.ZipCode, req.Phone, req.Email, req.Website, req.TaxID, req.Logo); err != nil {
		return nil, err
	}

	if err := s.businessRepo.Save(ctx, info); err != nil {
		return nil, err
	}
	return toResponse(info), nil
}

func toResponse(info *company.BusinessInfo) *BusinessInfoResponse {
	return &BusinessInfoResponse{
		Name:    info.Name,
		Address: info.Address,
		City:    info.City,
		State:   info.State,
		ZipCode: info.ZipCode,
		Phone:   info.Phone,
		Email:   info.Email,
		Website: info.Website,
		TaxID:   info.TaxID,
		Logo:    info.Logo,
	}
}
