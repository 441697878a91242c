package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/domain/repository"
)

// CartUseCase manages the user's shopping cart.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Entries returns the user's cart lines joined with product data.
func (u *CartUseCase) Entries(ctx context.Context, userID int64) ([]model.CartEntry, error) {
	cart, err := u.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.carts.Entries(ctx, cart.ID)
}

// Add puts quantity units of a product into the cart, merging into an
// existing line for the same product.
func (u *CartUseCase) Add(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}

	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return err
	}

	cart, err := u.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	line, err := u.carts.GetLine(ctx, cart.ID, productID)
	switch {
	case err == nil:
		return u.carts.UpdateLineQuantity(ctx, line.ID, line.Quantity+quantity)
	case errors.Is(err, domainErrors.ErrNotFound):
		_, err = u.carts.InsertLine(ctx, &model.CartLine{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
			Selected:  true,
		})
		return err
	default:
		return err
	}
}

// UpdateQuantity sets the quantity of a cart line. A non-positive quantity
// removes the line.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	line, err := u.line(ctx, userID, productID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return u.carts.DeleteLine(ctx, line.ID)
	}
	return u.carts.UpdateLineQuantity(ctx, line.ID, quantity)
}

// Select toggles whether a line participates in checkout.
func (u *CartUseCase) Select(ctx context.Context, userID, productID int64, selected bool) error {
	line, err := u.line(ctx, userID, productID)
	if err != nil {
		return err
	}
	return u.carts.SetLineSelected(ctx, line.ID, selected)
}

// Remove deletes a product's line from the cart.
func (u *CartUseCase) Remove(ctx context.Context, userID, productID int64) error {
	line, err := u.line(ctx, userID, productID)
	if err != nil {
		return err
	}
	return u.carts.DeleteLine(ctx, line.ID)
}

// Clear empties the user's cart.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	cart, err := u.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	return u.carts.Clear(ctx, cart.ID)
}

func (u *CartUseCase) line(ctx context.Context, userID, productID int64) (*model.CartLine, error) {
	cart, err := u.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.carts.GetLine(ctx, cart.ID, productID)
}
