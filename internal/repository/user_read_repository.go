package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/eaglebank/ledger/internal/apperr"
	"github.com/eaglebank/ledger/shared/models"
	sharedredis "github.com/eaglebank/ledger/shared/redis"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const userViewKeyPrefix = "user:view:"

// cacheWriteTimeout bounds the Redis calls made for each commit.
const cacheWriteTimeout = 250 * time.Millisecond

// userView is the cached projection of a user, stamped with the store version
// it was taken at.
type userView struct {
	Version uint64      `json:"version"`
	User    models.User `json:"user"`
}

// UserReadRepository handles all read operations for users.
// It uses Redis as the primary read store when configured and checks every
// cached view against the ledger store's version before serving it. Without
// Redis it reads the store directly.
type UserReadRepository struct {
	store  *LedgerStore
	cache  *sharedredis.ViewCache[userView]
	logger *zap.Logger
}

// NewUserReadRepository builds the read side. redisClient may be nil. When it
// is not, the repository subscribes to store commits to keep the cache current.
func NewUserReadRepository(store *LedgerStore, redisClient *goredis.Client, ttl time.Duration, logger *zap.Logger) *UserReadRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &UserReadRepository{store: store, logger: logger}
	if redisClient != nil {
		r.cache = sharedredis.NewViewCache[userView](redisClient, ttl, logger)
		store.OnCommit(r.onCommit)
	}
	return r
}

// GetByID returns a user from Redis when the cached view is current, otherwise
// from the ledger store.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if r.cache == nil {
		user, ok := r.store.FindUser(id)
		if !ok {
			return nil, apperr.ErrUserNotFound
		}
		return &user, nil
	}

	cacheKey := userViewKey(id)
	cached, hit := r.cache.Get(ctx, cacheKey)
	if hit {
		if current, ok := r.store.Version(id); ok && current == cached.Version {
			return &cached.User, nil
		}
	}

	user, version, ok := r.store.FindUserVersion(id)
	if !ok {
		if hit {
			r.cache.Delete(ctx, cacheKey)
		}
		return nil, apperr.ErrUserNotFound
	}

	view := &userView{Version: version, User: user}
	if hit {
		r.logger.Debug("replacing stale user view",
			zap.Int64("user_id", id),
			zap.Uint64("cached_version", cached.Version),
			zap.Uint64("version", version))
		_ = r.cache.Set(ctx, cacheKey, view)
	} else {
		r.cache.SetIfAbsent(ctx, cacheKey, view)
	}
	return &user, nil
}

// List returns every user straight from the ledger store.
func (r *UserReadRepository) List(_ context.Context) []models.User {
	return r.store.ListUsers()
}

func (r *UserReadRepository) onCommit(user models.User, version uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
	defer cancel()

	cacheKey := userViewKey(user.ID)
	if err := r.cache.Set(ctx, cacheKey, &userView{Version: version, User: user}); err != nil {
		r.cache.Delete(ctx, cacheKey)
	}
}

func userViewKey(id int64) string {
	return userViewKeyPrefix + strconv.FormatInt(id, 10)
}
