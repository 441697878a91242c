package usecase

import (
	"context"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/domain/repository"
)

// AddressUseCase manages saved shipping addresses.
type AddressUseCase struct {
	addresses repository.AddressRepository
}

// NewAddressUseCase constructs AddressUseCase.
func NewAddressUseCase(addresses repository.AddressRepository) *AddressUseCase {
	return &AddressUseCase{addresses: addresses}
}

// Create stores an address for the user.
func (u *AddressUseCase) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	if address.Recipient == "" || address.Line == "" || address.City == "" {
		return nil, domainErrors.ErrAddressNotFound
	}
	if !ValidatePhone(address.PhoneNumber) {
		return nil, domainErrors.ErrInvalidPhone
	}
	if address.Type != model.AddressOffice {
		address.Type = model.AddressHome
	}
	return u.addresses.Create(ctx, address)
}

// ListByUser returns the user's saved addresses, default first.
func (u *AddressUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	return u.addresses.ListByUser(ctx, userID)
}

// SetDefault makes one address the user's default, clearing any previous one.
func (u *AddressUseCase) SetDefault(ctx context.Context, userID, addressID int64) error {
	address, err := u.addresses.GetByID(ctx, addressID)
	if err != nil {
		return err
	}
	if address.UserID != userID {
		return domainErrors.ErrNotFound
	}
	return u.addresses.SetDefault(ctx, userID, addressID)
}

// Delete removes one of the user's addresses.
func (u *AddressUseCase) Delete(ctx context.Context, userID, addressID int64) error {
	address, err := u.addresses.GetByID(ctx, addressID)
	if err != nil {
		return err
	}
	if address.UserID != userID {
		return domainErrors.ErrNotFound
	}
	return u.addresses.Delete(ctx, addressID)
}
