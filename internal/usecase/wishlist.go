package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/domain/repository"
)

// WishlistUseCase manages saved products.
type WishlistUseCase struct {
	wishlists repository.WishlistRepository
	products  repository.ProductRepository
}

// NewWishlistUseCase constructs WishlistUseCase.
func NewWishlistUseCase(wishlists repository.WishlistRepository, products repository.ProductRepository) *WishlistUseCase {
	return &WishlistUseCase{wishlists: wishlists, products: products}
}

// Add saves a product to the wishlist. Adding twice is a no-op.
func (u *WishlistUseCase) Add(ctx context.Context, userID, productID int64) error {
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return err
	}
	if err := u.wishlists.Add(ctx, userID, productID); err != nil && !errors.Is(err, domainErrors.ErrAlreadyExists) {
		return err
	}
	return nil
}

// Remove drops a product from the wishlist.
func (u *WishlistUseCase) Remove(ctx context.Context, userID, productID int64) error {
	return u.wishlists.Remove(ctx, userID, productID)
}

// ListByUser returns the wished products with their catalog data.
func (u *WishlistUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	return u.wishlists.ListByUser(ctx, userID)
}
