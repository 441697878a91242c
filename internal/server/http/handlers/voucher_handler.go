package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/server/http/dto"
)

// VoucherHandler manages the user's voucher wallet.
type VoucherHandler struct {
	facade VoucherFacade
}

// NewVoucherHandler constructs VoucherHandler.
func NewVoucherHandler(facade VoucherFacade) *VoucherHandler {
	return &VoucherHandler{facade: facade}
}

// List handles GET /api/user/vouchers.
func (h *VoucherHandler) List(c *gin.Context) {
	vouchers, err := h.facade.Vouchers(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.VoucherResponse, 0, len(vouchers))
	for _, v := range vouchers {
		response = append(response, toVoucherResponse(v))
	}
	c.JSON(http.StatusOK, response)
}

// Validate handles POST /api/user/vouchers/validate.
func (h *VoucherHandler) Validate(c *gin.Context) {
	var req dto.ValidateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	voucher, err := h.facade.ValidateVoucher(c.Request.Context(), CurrentUserID(c), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidVoucher):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrVoucherExpired),
			errors.Is(err, domainErrors.ErrVoucherLimitReached):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toVoucherResponse(*voucher))
}

// Grant handles POST /api/admin/vouchers.
func (h *VoucherHandler) Grant(c *gin.Context) {
	var req dto.GrantVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.UserID == 0 || req.Code == "" {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	voucher := &model.Voucher{
		UserID:        req.UserID,
		Code:          req.Code,
		Title:         req.Title,
		Description:   req.Description,
		DiscountType:  model.DiscountType(req.DiscountType),
		Target:        model.VoucherTarget(req.Target),
		DiscountValue: req.DiscountValue,
		MaxUsage:      req.MaxUsage,
	}
	if req.ExpiresAt != nil {
		voucher.ExpiresAt = *req.ExpiresAt
	}

	granted, err := h.facade.GrantVoucher(c.Request.Context(), voucher)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrInvalidVoucher):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toVoucherResponse(*granted))
}

func toVoucherResponse(v model.Voucher) dto.VoucherResponse {
	resp := dto.VoucherResponse{
		ID:            v.ID,
		Code:          v.Code,
		Title:         v.Title,
		Description:   v.Description,
		DiscountType:  string(v.DiscountType),
		Target:        string(v.Target),
		DiscountValue: v.DiscountValue,
		UsageCount:    v.UsageCount,
		MaxUsage:      v.MaxUsage,
	}
	if !v.ExpiresAt.IsZero() {
		expires := v.ExpiresAt.UTC().Truncate(time.Second)
		resp.ExpiresAt = &expires
	}
	return resp
}
