package usecase

import (
	"context"
	"time"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/domain/repository"
	"github.com/trangvu/shopmart/internal/pkg/card"
)

// PaymentUseCase manages saved cards. Full card numbers are validated and
// immediately reduced to their last four digits; nothing else is stored.
type PaymentUseCase struct {
	cards repository.CardRepository
	now   func() time.Time
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(cards repository.CardRepository) *PaymentUseCase {
	return &PaymentUseCase{cards: cards, now: time.Now}
}

// SaveCard validates and stores a card for the user.
func (u *PaymentUseCase) SaveCard(ctx context.Context, userID int64, holder, number string, expMonth, expYear int) (*model.PaymentCard, error) {
	if err := card.Validate(number); err != nil {
		return nil, domainErrors.ErrInvalidCard
	}
	if expMonth < 1 || expMonth > 12 {
		return nil, domainErrors.ErrInvalidCard
	}

	now := u.now()
	if expYear < now.Year() || (expYear == now.Year() && time.Month(expMonth) < now.Month()) {
		return nil, domainErrors.ErrInvalidCard
	}

	return u.cards.Create(ctx, &model.PaymentCard{
		UserID:   userID,
		Holder:   holder,
		LastFour: card.LastFour(number),
		ExpMonth: expMonth,
		ExpYear:  expYear,
	})
}

// ListCards returns the user's saved cards.
func (u *PaymentUseCase) ListCards(ctx context.Context, userID int64) ([]model.PaymentCard, error) {
	return u.cards.ListByUser(ctx, userID)
}

// DeleteCard removes one of the user's cards.
func (u *PaymentUseCase) DeleteCard(ctx context.Context, userID, cardID int64) error {
	return u.cards.Delete(ctx, userID, cardID)
}
