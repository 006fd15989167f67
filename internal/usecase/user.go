package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/domain/repository"
	"github.com/starbuy/shop/internal/pkg/ids"
)

// UserUseCase manages wallet accounts keyed by telegram id.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Resolve returns the existing account or registers a new one. The referral
// code binds the new account to its referrer; a code pointing at the account
// itself is ignored by the storage layer.
func (u *UserUseCase) Resolve(ctx context.Context, telegramID int64, username, firstName, referralCode string) (*model.User, error) {
	user, err := u.users.GetByTelegramID(ctx, telegramID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	user, err = u.users.Create(ctx, repository.CreateUserParams{
		TelegramID:     telegramID,
		Username:       username,
		FirstName:      firstName,
		ReferralCode:   ids.NewReferralCode(),
		ReferredByCode: referralCode,
	})
	if errors.Is(err, domainErrors.ErrAlreadyExists) {
		// Lost a registration race, the winner's row is authoritative.
		return u.users.GetByTelegramID(ctx, telegramID)
	}
	return user, err
}

// Get returns the account without creating it.
func (u *UserUseCase) Get(ctx context.Context, telegramID int64) (*model.User, error) {
	return u.users.GetByTelegramID(ctx, telegramID)
}
