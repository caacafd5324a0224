package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/masindi/relief-coordination-api/internal/constants"
	"github.com/masindi/relief-coordination-api/internal/dto"
	apierrors "github.com/masindi/relief-coordination-api/internal/errors"
	"github.com/masindi/relief-coordination-api/internal/middleware"
	"github.com/masindi/relief-coordination-api/internal/services"
	"github.com/masindi/relief-coordination-api/internal/utils"
)

// DonationHandler coordinates donation intake and queries.
type DonationHandler struct {
	donationService *services.DonationService
}

// NewDonationHandler creates a new DonationHandler.
func NewDonationHandler(donationService *services.DonationService) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// Donate records a donation by the authenticated user.
func (h *DonationHandler) Donate(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, constants.LoginPath)
		return
	}

	type DonateRequest struct {
		CategoryID   string `form:"category_id" json:"category_id" binding:"required,uuid"`
		ItemName     string `form:"item_name" json:"item_name" binding:"required,max=255"`
		Quantity     int    `form:"quantity" json:"quantity" binding:"required,gte=1"`
		Description  string `form:"description" json:"description"`
		DonationType string `form:"donation_type" json:"donation_type" binding:"required"`
	}

	var req DonateRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid donation form", err.Error())
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		apierrors.BadRequest(c, "Invalid category ID")
		return
	}

	_, err = h.donationService.Donate(services.DonateInput{
		CategoryID:   categoryID,
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		Description:  req.Description,
		DonationType: req.DonationType,
	}, principal.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrInvalidQuantity):
			apierrors.BadRequest(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to record donation")
		}
		return
	}

	addFlash(c, flashSuccess, "Thank you for your donation!")
	c.Redirect(http.StatusFound, "/")
}

// MyDonations returns the authenticated donor's donations newest first.
func (h *DonationHandler) MyDonations(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		c.Redirect(http.StatusFound, constants.LoginPath)
		return
	}

	donations, err := h.donationService.ListMine(principal.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch donations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"donations": dto.ToDonationDTOs(donations),
	})
}

// All returns every donation newest first.
func (h *DonationHandler) All(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	donations, total, err := h.donationService.ListAll(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch donations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"donations": dto.ToDonationDTOs(donations),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// Categories returns the resource categories donations are filed under.
func (h *DonationHandler) Categories(c *gin.Context) {
	categories, err := h.donationService.ListCategories()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": dto.ToCategoryDTOs(categories),
	})
}
