package repository

import (
	"context"

	"github.com/trangvu/shopmart/internal/domain/model"
)

// CardRepository describes persistence operations for saved payment cards.
type CardRepository interface {
	Create(ctx context.Context, card *model.PaymentCard) (*model.PaymentCard, error)
	ListByUser(ctx context.Context, userID int64) ([]model.PaymentCard, error)
	Delete(ctx context.Context, userID, cardID int64) error
}
