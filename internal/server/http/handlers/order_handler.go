package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/server/http/dto"
	"github.com/trangvu/shopmart/internal/usecase"
)

// OrderHandler manages checkout pricing and the order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// ShippingMethods handles GET /api/shipping/methods.
func (h *OrderHandler) ShippingMethods(c *gin.Context) {
	methods := h.facade.ShippingMethods()
	response := make([]dto.ShippingMethodResponse, 0, len(methods))
	for _, m := range methods {
		response = append(response, dto.ShippingMethodResponse{
			ID:          m.ID,
			Name:        m.Name,
			Price:       m.Price,
			Description: m.Description,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Quote handles POST /api/user/orders/quote.
func (h *OrderHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	quote, err := h.facade.QuoteOrder(c.Request.Context(), CurrentUserID(c), usecase.QuoteInput{
		Street:           req.Street,
		District:         req.District,
		City:             req.City,
		ShippingMethodID: req.ShippingMethodID,
		VoucherCode:      req.VoucherCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrEmptyCart),
			errors.Is(err, domainErrors.ErrInvalidShippingMethod),
			errors.Is(err, domainErrors.ErrInvalidVoucher),
			errors.Is(err, domainErrors.ErrVoucherExpired),
			errors.Is(err, domainErrors.ErrVoucherLimitReached):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrAddressNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	b := quote.Breakdown
	c.JSON(http.StatusOK, dto.QuoteResponse{
		Subtotal:         b.Subtotal,
		ProductDiscount:  b.ProductDiscount,
		MethodFee:        b.MethodFee,
		DistanceFee:      b.DistanceFee,
		ShippingDiscount: b.ShippingDiscount,
		ShippingTotal:    b.ShippingTotal(),
		GrandTotal:       b.GrandTotal(),
		DistanceKm:       quote.DistanceKm,
		ShippingMethod:   quote.Method.ID,
	})
}

// Place handles POST /api/user/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), usecase.PlaceOrderInput{
		Address:          req.Address,
		PhoneNumber:      req.PhoneNumber,
		ShippingMethodID: req.ShippingMethodID,
		DistanceFee:      req.DistanceFee,
		VoucherCode:      req.VoucherCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAddressNotFound),
			errors.Is(err, domainErrors.ErrInvalidPhone),
			errors.Is(err, domainErrors.ErrInvalidShippingMethod),
			errors.Is(err, domainErrors.ErrInvalidVoucher),
			errors.Is(err, domainErrors.ErrVoucherExpired),
			errors.Is(err, domainErrors.ErrVoucherLimitReached):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrEmptyCart):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrInsufficientStock):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/user/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/user/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, entries, err := h.facade.Order(c.Request.Context(), CurrentUserID(c), orderID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	detail := dto.OrderDetailResponse{
		OrderResponse: toOrderResponse(*order),
		Items:         make([]dto.OrderItemResponse, 0, len(entries)),
	}
	for _, e := range entries {
		detail.Items = append(detail.Items, dto.OrderItemResponse{
			Product:   toProductResponse(e.Product),
			Quantity:  e.Line.Quantity,
			UnitPrice: e.Line.UnitPrice,
		})
	}
	c.JSON(http.StatusOK, detail)
}

// Cancel handles POST /api/user/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.CancelOrder(c.Request.Context(), CurrentUserID(c), orderID); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrOrderNotCancellable):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

// Advance handles POST /api/admin/orders/:id/status.
func (h *OrderHandler) Advance(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AdvanceOrder(c.Request.Context(), orderID, model.OrderStatus(req.Status)); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrInvalidStatusChange):
			c.Status(http.StatusConflict)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:             order.ID,
		Number:         order.Number,
		Status:         string(order.Status),
		TotalPrice:     order.TotalPrice,
		Address:        order.Address,
		PhoneNumber:    order.PhoneNumber,
		ShippingMethod: order.ShippingMethod,
		ShippingFee:    order.ShippingFee,
		DiscountAmount: order.DiscountAmount,
		CreatedAt:      order.CreatedAt,
	}
}
