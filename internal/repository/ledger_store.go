package repository

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/eaglebank/ledger/internal/apperr"
	"github.com/eaglebank/ledger/shared/models"
	"github.com/shopspring/decimal"
)

// LedgerStore is the in-memory source of truth for users and their accounts.
// It owns identifier allocation and raw mutation; it applies no business rules.
//
// Every user has its own mutex. All reads and writes of a user's account list
// and balances happen under that mutex, so a read-decide-write sequence run
// through Update cannot interleave with another one for the same user.
type LedgerStore struct {
	mu        sync.RWMutex
	users     []*userEntry
	index     map[int64]*userEntry
	observers []CommitObserver

	nextUserID    atomic.Int64
	nextAccountID atomic.Int64
}

type userEntry struct {
	mu      sync.Mutex
	user    models.User
	version uint64
}

// CommitObserver is notified with a snapshot of a user and its version after
// every committed change. It runs after the user's lock is released, so two
// observers for the same user may see commits out of order; the version tells
// them apart.
type CommitObserver func(user models.User, version uint64)

type StoreOption func(*LedgerStore)

// WithSeedUsers pre-creates n users without accounts.
func WithSeedUsers(n int) StoreOption {
	return func(s *LedgerStore) {
		for i := 0; i < n; i++ {
			s.CreateUser()
		}
	}
}

func NewLedgerStore(opts ...StoreOption) *LedgerStore {
	s := &LedgerStore{index: make(map[int64]*userEntry)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnCommit registers an observer.
func (s *LedgerStore) OnCommit(fn CommitObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// CreateUser allocates a new user with no accounts.
func (s *LedgerStore) CreateUser() models.User {
	e := &userEntry{
		user: models.User{
			ID:       s.nextUserID.Add(1) - 1,
			Accounts: []models.Account{},
		},
		version: 1,
	}

	e.mu.Lock()
	s.mu.Lock()
	s.users = append(s.users, e)
	s.index[e.user.ID] = e
	s.mu.Unlock()
	snapshot := e.user.Clone()
	e.mu.Unlock()

	s.notify(snapshot, 1)
	return snapshot
}

// FindUser returns a snapshot of the user, or false if it does not exist.
func (s *LedgerStore) FindUser(id int64) (models.User, bool) {
	u, _, ok := s.FindUserVersion(id)
	return u, ok
}

// FindUserVersion returns a snapshot of the user together with its version.
// The version starts at 1 and grows by one with every committed Update.
func (s *LedgerStore) FindUserVersion(id int64) (models.User, uint64, bool) {
	e := s.entry(id)
	if e == nil {
		return models.User{}, 0, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.user.Clone(), e.version, true
}

// Version returns the user's current version without copying its accounts.
func (s *LedgerStore) Version(id int64) (uint64, bool) {
	e := s.entry(id)
	if e == nil {
		return 0, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.version, true
}

// ListUsers returns snapshots of every user in creation order.
func (s *LedgerStore) ListUsers() []models.User {
	s.mu.RLock()
	entries := make([]*userEntry, len(s.users))
	copy(entries, s.users)
	s.mu.RUnlock()

	out := make([]models.User, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, e.user.Clone())
		e.mu.Unlock()
	}
	return out
}

// Update runs fn with exclusive access to the user's accounts and returns the
// user as it stands after fn. If fn returns an error the error is passed
// through; fn must make its decision before mutating anything through tx.
func (s *LedgerStore) Update(userID int64, fn func(tx *UserTx) error) (models.User, error) {
	e := s.entry(userID)
	if e == nil {
		return models.User{}, apperr.ErrUserNotFound
	}

	snapshot, version, err := s.apply(e, fn)
	if err != nil {
		return models.User{}, err
	}
	s.notify(snapshot, version)
	return snapshot, nil
}

func (s *LedgerStore) apply(e *userEntry, fn func(tx *UserTx) error) (models.User, uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := fn(&UserTx{store: s, user: &e.user}); err != nil {
		return models.User{}, 0, err
	}
	e.version++
	return e.user.Clone(), e.version, nil
}

func (s *LedgerStore) entry(id int64) *userEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index[id]
}

func (s *LedgerStore) notify(u models.User, version uint64) {
	s.mu.RLock()
	observers := s.observers
	s.mu.RUnlock()
	for _, fn := range observers {
		fn(u.Clone(), version)
	}
}

// UserTx exposes raw mutation of one user's accounts. It is only valid inside
// the LedgerStore.Update callback that created it.
type UserTx struct {
	store *LedgerStore
	user  *models.User
}

// TotalBalance sums the balances of all of the user's accounts.
func (tx *UserTx) TotalBalance() decimal.Decimal {
	return tx.user.TotalBalance()
}

func (tx *UserTx) FindAccount(accountID int64) (models.Account, bool) {
	return tx.user.Account(accountID)
}

// AddAccount allocates a new account id and appends the account.
func (tx *UserTx) AddAccount(balance decimal.Decimal) models.Account {
	account := models.Account{
		ID:      tx.store.nextAccountID.Add(1) - 1,
		Balance: balance,
	}
	tx.user.Accounts = append(tx.user.Accounts, account)
	return account
}

// RemoveAccount drops the account from the user's collection.
func (tx *UserTx) RemoveAccount(accountID int64) {
	tx.user.Accounts = slices.DeleteFunc(tx.user.Accounts, func(a models.Account) bool {
		return a.ID == accountID
	})
}

// ApplyDelta adds a signed amount to the account's balance. The caller has
// already checked the change against the rules.
func (tx *UserTx) ApplyDelta(accountID int64, delta decimal.Decimal) {
	for i := range tx.user.Accounts {
		if tx.user.Accounts[i].ID == accountID {
			tx.user.Accounts[i].Balance = tx.user.Accounts[i].Balance.Add(delta)
			return
		}
	}
}
