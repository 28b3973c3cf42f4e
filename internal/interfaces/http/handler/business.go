package handler

import (
	"github.com/gin-gonic/gin"

	companyapp "github.com/inventorypro/backend/internal/application/company"
)

// BusinessInfoHandler handles the business info endpoints
type BusinessInfoHandler struct {
	BaseHandler
	businessService *companyapp.BusinessInfoService
}

// NewBusinessInfoHandler creates a new BusinessInfoHandler
func NewBusinessInfoHandler(businessService *companyapp.BusinessInfoService) *BusinessInfoHandler {
	return &BusinessInfoHandler{businessService: businessService}
}

// BusinessInfoRequest replaces the business info record wholesale
type BusinessInfoRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"max=500"`
	City    string `json:"city" binding:"max=100"`
	State   string `json:"state" binding:"max=100"`
	ZipCode string `json:"zip_code" binding:"max=20"`
	Phone   string `json:"phone" binding:"max=50"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
	Website string `json:"website" binding:"max=200"`
	TaxID   string `json:"tax_id" binding:"max=50"`
	Logo    string `json:"logo" binding:"max=500"`
}

// Get returns the business info record
func (h *BusinessInfoHandler) Get(c *gin.Context) {
	info, err := h.businessService.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// Replace overwrites the record wholesale, creating it on first use
func (h *BusinessInfoHandler) Replace(c *gin.Context) {
	var req BusinessInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	info, err := h.businessService.Replace(c.Request.Context(), companyapp.BusinessInfoRequest{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
		Phone:   req.Phone,
		Email:   req.Email,
		Website: req.Website,
		TaxID:   req.TaxID,
		Logo:    req.Logo,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, info)
}

// RegisterRoutes registers the business info routes
func (h *BusinessInfoHandler) RegisterRoutes(rg *gin.RouterGroup) {
	business := rg.Group("/company/business-info")
	{
		business.GET("", h.Get)
		business.PUT("", h.Replace)
	}
}
