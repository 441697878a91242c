package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	testhelpers "github.com/trangvu/shopmart/internal/test"
)

func sampleAddress(userID int64) *model.Address {
	return &model.Address{
		UserID:      userID,
		Recipient:   "Tran Van A",
		Line:        "12 Quang Trung",
		District:    "Ha Dong",
		City:        "Hanoi",
		PhoneNumber: "0912345678",
	}
}

func TestAddressCreateDefaultsType(t *testing.T) {
	uc := NewAddressUseCase(testhelpers.NewStore().Addresses())
	created, err := uc.Create(context.Background(), sampleAddress(1))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Type != model.AddressHome {
		t.Fatalf("expected HOME default, got %s", created.Type)
	}
}

func TestAddressCreateValidation(t *testing.T) {
	uc := NewAddressUseCase(testhelpers.NewStore().Addresses())

	a := sampleAddress(1)
	a.PhoneNumber = "not-a-phone"
	if _, err := uc.Create(context.Background(), a); !errors.Is(err, domainErrors.ErrInvalidPhone) {
		t.Fatalf("expected ErrInvalidPhone, got %v", err)
	}

	a = sampleAddress(1)
	a.City = ""
	if _, err := uc.Create(context.Background(), a); err == nil {
		t.Fatal("expected error for missing city")
	}
}

func TestAddressSetDefaultExclusive(t *testing.T) {
	store := testhelpers.NewStore()
	uc := NewAddressUseCase(store.Addresses())
	ctx := context.Background()

	first, err := uc.Create(ctx, sampleAddress(1))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := uc.Create(ctx, sampleAddress(1))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := uc.SetDefault(ctx, 1, first.ID); err != nil {
		t.Fatalf("set default failed: %v", err)
	}
	if err := uc.SetDefault(ctx, 1, second.ID); err != nil {
		t.Fatalf("set default failed: %v", err)
	}

	addresses, err := uc.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	var defaults int
	for _, a := range addresses {
		if a.IsDefault {
			defaults++
			if a.ID != second.ID {
				t.Fatalf("wrong default address: %+v", a)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}
}

func TestAddressOwnership(t *testing.T) {
	store := testhelpers.NewStore()
	uc := NewAddressUseCase(store.Addresses())
	ctx := context.Background()

	a, err := uc.Create(ctx, sampleAddress(1))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := uc.SetDefault(ctx, 2, a.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, 2, a.ID); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := uc.Delete(ctx, 1, a.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}
