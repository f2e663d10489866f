package command

import (
	"github.com/eaglebank/ledger/internal/apperr"
	"github.com/eaglebank/ledger/internal/repository"
	"github.com/eaglebank/ledger/internal/rules"
	"github.com/eaglebank/ledger/shared/cqrs"
	"github.com/eaglebank/ledger/shared/models"
	"go.uber.org/zap"
)

// AccountCommandService applies account mutations to the ledger store after
// checking them against the rules.
//
// Checks run in a fixed order: payload-only amount checks first, then the
// user, then the account. When several conditions fail at once, callers can
// rely on that order to know which error they get.
type AccountCommandService struct {
	store  *repository.LedgerStore
	logger *zap.Logger
}

func NewAccountCommandService(store *repository.LedgerStore, logger *zap.Logger) *AccountCommandService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountCommandService{store: store, logger: logger}
}

func (s *AccountCommandService) CreateAccount(cmd cqrs.CreateAccountCommand) (*models.User, error) {
	if err := rules.ValidateCreation(cmd.Balance); err != nil {
		return nil, s.reject("create_account", cmd.UserID, err)
	}

	var account models.Account
	user, err := s.store.Update(cmd.UserID, func(tx *repository.UserTx) error {
		account = tx.AddAccount(cmd.Balance)
		return nil
	})
	if err != nil {
		return nil, s.reject("create_account", cmd.UserID, err)
	}

	s.logger.Info("account created",
		zap.Int64("user_id", user.ID),
		zap.Int64("account_id", account.ID),
		zap.Stringer("balance", account.Balance))
	return &user, nil
}

// DeleteAccount removes an account. Removal can only raise the user's margin
// under every rule, so nothing is re-validated afterwards.
func (s *AccountCommandService) DeleteAccount(cmd cqrs.DeleteAccountCommand) (*models.User, error) {
	user, err := s.store.Update(cmd.UserID, func(tx *repository.UserTx) error {
		if _, ok := tx.FindAccount(cmd.AccountID); !ok {
			return apperr.ErrAccountNotFound
		}
		tx.RemoveAccount(cmd.AccountID)
		return nil
	})
	if err != nil {
		return nil, s.reject("delete_account", cmd.UserID, err, zap.Int64("account_id", cmd.AccountID))
	}

	s.logger.Info("account deleted",
		zap.Int64("user_id", user.ID),
		zap.Int64("account_id", cmd.AccountID))
	return &user, nil
}

func (s *AccountCommandService) Deposit(cmd cqrs.DepositCommand) (*models.User, error) {
	if err := rules.ValidateDeposit(cmd.Amount); err != nil {
		return nil, s.reject("deposit", cmd.UserID, err, zap.Int64("account_id", cmd.AccountID))
	}

	user, err := s.store.Update(cmd.UserID, func(tx *repository.UserTx) error {
		if _, ok := tx.FindAccount(cmd.AccountID); !ok {
			return apperr.ErrAccountNotFound
		}
		tx.ApplyDelta(cmd.AccountID, cmd.Amount)
		return nil
	})
	if err != nil {
		return nil, s.reject("deposit", cmd.UserID, err, zap.Int64("account_id", cmd.AccountID))
	}

	s.logger.Info("deposit applied",
		zap.Int64("user_id", user.ID),
		zap.Int64("account_id", cmd.AccountID),
		zap.Stringer("amount", cmd.Amount))
	return &user, nil
}

// Withdraw checks the 90% cap against the user's total balance before the
// account is even resolved, then checks the account's own floor.
func (s *AccountCommandService) Withdraw(cmd cqrs.WithdrawCommand) (*models.User, error) {
	user, err := s.store.Update(cmd.UserID, func(tx *repository.UserTx) error {
		if err := rules.ValidateWithdrawalLimit(cmd.Amount, tx.TotalBalance()); err != nil {
			return err
		}
		account, ok := tx.FindAccount(cmd.AccountID)
		if !ok {
			return apperr.ErrAccountNotFound
		}
		if err := rules.ValidateWithdrawalFloor(account.Balance, cmd.Amount); err != nil {
			return err
		}
		tx.ApplyDelta(cmd.AccountID, cmd.Amount.Neg())
		return nil
	})
	if err != nil {
		return nil, s.reject("withdraw", cmd.UserID, err, zap.Int64("account_id", cmd.AccountID))
	}

	s.logger.Info("withdrawal applied",
		zap.Int64("user_id", user.ID),
		zap.Int64("account_id", cmd.AccountID),
		zap.Stringer("amount", cmd.Amount))
	return &user, nil
}

func (s *AccountCommandService) reject(op string, userID int64, err error, fields ...zap.Field) error {
	fields = append(fields,
		zap.String("operation", op),
		zap.Int64("user_id", userID),
		zap.Stringer("kind", apperr.KindOf(err)),
		zap.Error(err))
	s.logger.Debug("account operation rejected", fields...)
	return err
}
