package repository

import (
	"context"

	"github.com/starbuy/shop/internal/domain/model"
)

// CreateUserParams carries the fields needed to register a new user.
// ReferredByCode is the raw referral code supplied at signup; resolution
// to a referrer (and self-referral rejection) happens in the repository.
type CreateUserParams struct {
	TelegramID     int64
	Username       string
	FirstName      string
	ReferralCode   string
	ReferredByCode string
}

// UserRepository describes persistence operations for users.
type UserRepository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
	Create(ctx context.Context, params CreateUserParams) (*model.User, error)
}
