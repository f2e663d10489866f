package command

import (
	"github.com/eaglebank/ledger/internal/repository"
	"github.com/eaglebank/ledger/shared/models"
	"go.uber.org/zap"
)

// UserCommandService creates users in the ledger store. Users carry no
// attributes beyond their id, so creation cannot fail.
type UserCommandService struct {
	store  *repository.LedgerStore
	logger *zap.Logger
}

func NewUserCommandService(store *repository.LedgerStore, logger *zap.Logger) *UserCommandService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserCommandService{store: store, logger: logger}
}

func (s *UserCommandService) CreateUser() *models.User {
	user := s.store.CreateUser()
	s.logger.Info("user created", zap.Int64("user_id", user.ID))
	return &user
}
