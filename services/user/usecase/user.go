package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/piresc/parkspot/internal/pkg/apperror"
	"github.com/piresc/parkspot/internal/pkg/logger"
	"github.com/piresc/parkspot/internal/pkg/models"
)

var validate = validator.New()

// RegisterUser creates the user and opens their wallet in one transaction
func (uc *UserUC) RegisterUser(ctx context.Context, req models.RegisterUserRequest) (*models.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	fullName := strings.TrimSpace(req.FullName)

	if err := validate.Var(email, "required,email"); err != nil || utf8.RuneCountInString(fullName) < models.FullNameMinLength {
		return nil, apperror.ErrInvalidUser
	}

	u := &models.User{
		ID:       uuid.New(),
		Email:    email,
		FullName: fullName,
		IsEVUser: req.IsEVUser,
		IsActive: true,
	}

	err := uc.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, u); err != nil {
			return err
		}
		_, err := uc.walletUC.CreateWallet(ctx, u.ID, uc.cfg.Wallet.InitialBalance)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User registered",
		logger.UUID("user_id", u.ID),
		logger.Bool("is_ev_user", u.IsEVUser),
		logger.Decimal("initial_balance", uc.cfg.Wallet.InitialBalance))
	return u, nil
}

// GetUser retrieves a user
func (uc *UserUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// UpdateUser changes a user's profile. Reservations already made keep the
// eligibility they were checked with.
func (uc *UserUC) UpdateUser(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	if utf8.RuneCountInString(fullName) < models.FullNameMinLength {
		return nil, apperror.ErrInvalidUser
	}

	u, err := uc.userRepo.Update(ctx, id, fullName, req.IsEVUser)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User updated",
		logger.UUID("user_id", id),
		logger.Bool("is_ev_user", u.IsEVUser))
	return u, nil
}
