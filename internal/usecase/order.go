package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/domain/repository"
)

// QuoteInput describes a checkout to price before placing.
type QuoteInput struct {
	Street           string
	District         string
	City             string
	ShippingMethodID string
	VoucherCode      string
}

// Quote is a priced checkout preview. DistanceKm and the fee inside the
// breakdown come from geocoding the delivery address.
type Quote struct {
	Breakdown  PriceBreakdown
	DistanceKm float64
	Method     model.ShippingMethod
}

// PlaceOrderInput carries everything needed to place an order. DistanceFee
// is the value returned by a prior quote, so placement itself never talks to
// the geocoder.
type PlaceOrderInput struct {
	Address          string
	PhoneNumber      string
	ShippingMethodID string
	DistanceFee      float64
	VoucherCode      string
}

// OrderUseCase drives checkout pricing and the order lifecycle.
type OrderUseCase struct {
	orders        repository.OrderRepository
	carts         repository.CartRepository
	notifications repository.NotificationRepository
	shipping      *ShippingUseCase
	vouchers      *VoucherUseCase
	logger        *slog.Logger
	newNumber     func() string
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	carts repository.CartRepository,
	notifications repository.NotificationRepository,
	shipping *ShippingUseCase,
	vouchers *VoucherUseCase,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:        orders,
		carts:         carts,
		notifications: notifications,
		shipping:      shipping,
		vouchers:      vouchers,
		logger:        logger,
		newNumber:     uuid.NewString,
	}
}

// Quote prices the user's selected cart lines against a delivery address,
// shipping method and optional voucher.
func (u *OrderUseCase) Quote(ctx context.Context, userID int64, in QuoteInput) (*Quote, error) {
	subtotal, _, err := u.selectedLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	method, err := u.shipping.MethodByID(in.ShippingMethodID)
	if err != nil {
		return nil, err
	}

	estimate, err := u.shipping.Estimate(ctx, in.Street, in.District, in.City)
	if err != nil {
		return nil, err
	}

	voucher, err := u.optionalVoucher(ctx, userID, in.VoucherCode)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Breakdown:  ComputeQuote(subtotal, method.Price, estimate.Fee, voucher),
		DistanceKm: estimate.DistanceKm,
		Method:     *method,
	}, nil
}

// Place turns the user's selected cart lines into an order. Price snapshots,
// stock decrements, cart cleanup and voucher usage commit atomically in the
// storage layer; a failure of any precondition leaves everything untouched.
func (u *OrderUseCase) Place(ctx context.Context, userID int64, in PlaceOrderInput) (*model.Order, error) {
	if in.Address == "" {
		return nil, domainErrors.ErrAddressNotFound
	}
	if !ValidatePhone(in.PhoneNumber) {
		return nil, domainErrors.ErrInvalidPhone
	}
	if in.DistanceFee < 0 {
		in.DistanceFee = 0
	}

	subtotal, cartID, err := u.selectedLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	method, err := u.shipping.MethodByID(in.ShippingMethodID)
	if err != nil {
		return nil, err
	}

	voucher, err := u.optionalVoucher(ctx, userID, in.VoucherCode)
	if err != nil {
		return nil, err
	}

	breakdown := ComputeQuote(subtotal, method.Price, in.DistanceFee, voucher)

	draft := model.OrderDraft{
		UserID:         userID,
		CartID:         cartID,
		Number:         u.newNumber(),
		Address:        in.Address,
		PhoneNumber:    in.PhoneNumber,
		ShippingMethod: method.ID,
		ShippingFee:    breakdown.ShippingTotal(),
		DiscountAmount: breakdown.TotalDiscount(),
		TotalPrice:     breakdown.GrandTotal(),
	}
	if voucher != nil {
		draft.VoucherID = voucher.ID
	}

	order, err := u.orders.Place(ctx, draft)
	if err != nil {
		return nil, err
	}

	u.notify(ctx, order, model.NotificationOrder, "Order placed",
		fmt.Sprintf("Your order %s has been placed", order.Number))

	return order, nil
}

// Get returns an order with its lines, scoped to the owner.
func (u *OrderUseCase) Get(ctx context.Context, userID, orderID int64) (*model.Order, []model.OrderEntry, error) {
	order, err := u.owned(ctx, userID, orderID)
	if err != nil {
		return nil, nil, err
	}
	entries, err := u.orders.Entries(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, entries, nil
}

// ListByUser returns the user's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Cancel aborts a pending order and restores its stock. Anything past
// pending can no longer be cancelled.
func (u *OrderUseCase) Cancel(ctx context.Context, userID, orderID int64) error {
	order, err := u.owned(ctx, userID, orderID)
	if err != nil {
		return err
	}
	if order.Status != model.OrderStatusPending {
		return domainErrors.ErrOrderNotCancellable
	}

	if err := u.orders.Cancel(ctx, orderID); err != nil {
		return err
	}

	order.Status = model.OrderStatusCancelled
	u.notify(ctx, order, model.NotificationOrder, "Order cancelled",
		fmt.Sprintf("Your order %s has been cancelled", order.Number))

	return nil
}

// Advance moves an order along the fulfillment lifecycle and notifies the
// owner. Illegal transitions are rejected without side effects.
func (u *OrderUseCase) Advance(ctx context.Context, orderID int64, to model.OrderStatus) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanTransition(to) {
		return domainErrors.ErrInvalidStatusChange
	}

	if err := u.orders.UpdateStatus(ctx, orderID, to); err != nil {
		return err
	}

	order.Status = to
	switch to {
	case model.OrderStatusShipped:
		u.notify(ctx, order, model.NotificationShipping, "Order shipped",
			fmt.Sprintf("Your order %s is on the way", order.Number))
	case model.OrderStatusDelivered:
		u.notify(ctx, order, model.NotificationShipping, "Order delivered",
			fmt.Sprintf("Your order %s has been delivered", order.Number))
	}

	return nil
}

func (u *OrderUseCase) owned(ctx context.Context, userID, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// selectedLines returns the subtotal over the user's selected cart lines and
// the cart ID. An empty selection is a checkout error.
func (u *OrderUseCase) selectedLines(ctx context.Context, userID int64) (float64, int64, error) {
	cart, err := u.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return 0, 0, err
	}

	entries, err := u.carts.Entries(ctx, cart.ID)
	if err != nil {
		return 0, 0, err
	}

	var selected bool
	for _, e := range entries {
		if e.Line.Selected {
			if e.Product.Stock < e.Line.Quantity {
				return 0, 0, domainErrors.ErrInsufficientStock
			}
			selected = true
		}
	}
	if !selected {
		return 0, 0, domainErrors.ErrEmptyCart
	}

	return model.SelectedSubtotal(entries), cart.ID, nil
}

func (u *OrderUseCase) optionalVoucher(ctx context.Context, userID int64, code string) (*model.Voucher, error) {
	if code == "" {
		return nil, nil
	}
	return u.vouchers.Validate(ctx, userID, code)
}

// notify inserts an outbox notification. Failures are logged, not returned:
// the order mutation already committed.
func (u *OrderUseCase) notify(ctx context.Context, order *model.Order, kind model.NotificationType, title, message string) {
	_, err := u.notifications.Insert(ctx, &model.Notification{
		UserID:      order.UserID,
		Title:       title,
		Message:     message,
		Type:        kind,
		ReferenceID: order.ID,
	})
	if err != nil {
		u.logger.Error("insert notification",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()))
	}
}
