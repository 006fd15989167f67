package usecase

import (
	"context"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	domainErrors "github.com/starbuy/shop/internal/domain/errors"
	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/domain/repository"
	"github.com/starbuy/shop/internal/pkg/ids"
)

// DepositUseCase encapsulates the top-up lifecycle.
type DepositUseCase struct {
	deposits repository.DepositRepository
	users    repository.UserRepository
	settings repository.SettingsRepository
	notifier DepositNotifier
}

// NewDepositUseCase constructs DepositUseCase.
func NewDepositUseCase(
	deposits repository.DepositRepository,
	users repository.UserRepository,
	settings repository.SettingsRepository,
	notifier DepositNotifier,
) *DepositUseCase {
	return &DepositUseCase{deposits: deposits, users: users, settings: settings, notifier: notifier}
}

// SubmitRequest describes a top-up claim. The payment proof is optional;
// the external reference is what operators verify against.
type SubmitRequest struct {
	TelegramID     int64
	Amount         decimal.Decimal
	Method         string
	Reference      string
	ScreenshotPath string
}

// Submit records a deposit claim in Processing state. Funds are credited only
// after an admin approves the claim.
func (u *DepositUseCase) Submit(ctx context.Context, req SubmitRequest) (*model.Deposit, error) {
	method, ok := model.ParseDepositMethod(req.Method)
	if !ok {
		return nil, domainErrors.ErrInvalidInput
	}
	if req.Amount.LessThan(method.MinAmount()) {
		return nil, domainErrors.ErrInvalidAmount
	}

	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		return nil, domainErrors.ErrInvalidReference
	}
	if method.ReferenceNumeric() && !allDigits(reference) {
		return nil, domainErrors.ErrInvalidReference
	}

	user, err := u.users.GetByTelegramID(ctx, req.TelegramID)
	if err != nil {
		return nil, err
	}

	deposit, err := u.deposits.Submit(ctx, repository.SubmitDepositParams{
		DepositID:      ids.New(ids.DepositPrefix),
		UserID:         req.TelegramID,
		Amount:         req.Amount,
		Method:         method,
		Reference:      reference,
		ScreenshotPath: req.ScreenshotPath,
	})
	if err != nil {
		return nil, err
	}

	u.notifier.DepositSubmitted(deposit, user)
	return deposit, nil
}

// Resolve applies an admin action to the deposit. Approval credits the main
// balance exactly once.
func (u *DepositUseCase) Resolve(ctx context.Context, actorID int64, depositID string, action model.DepositAction) (*model.Deposit, error) {
	settings, err := u.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.CanManageOrders(actorID) {
		return nil, domainErrors.ErrUnauthorized
	}

	deposit, applied, err := u.deposits.Transition(ctx, depositID, action)
	if err != nil {
		return nil, err
	}
	if !applied {
		return deposit, domainErrors.ErrAlreadyProcessed
	}

	u.notifier.DepositResolved(deposit)
	return deposit, nil
}

// Get returns a single deposit by its public id.
func (u *DepositUseCase) Get(ctx context.Context, depositID string) (*model.Deposit, error) {
	return u.deposits.GetByDepositID(ctx, depositID)
}

// History returns the user's most recent deposits.
func (u *DepositUseCase) History(ctx context.Context, telegramID int64, limit int) ([]model.Deposit, error) {
	return u.deposits.ListByUser(ctx, telegramID, limit)
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
