package command

import (
	"sync"
	"testing"

	"github.com/eaglebank/ledger/internal/repository"
)

func TestCreateUser(t *testing.T) {
	store := repository.NewLedgerStore(repository.WithSeedUsers(2))
	svc := NewUserCommandService(store, nil)

	user := svc.CreateUser()
	if user.ID != 2 {
		t.Errorf("expected id 2 after two seeded users, got %d", user.ID)
	}
	if len(user.Accounts) != 0 {
		t.Errorf("expected no accounts, got %+v", user.Accounts)
	}
	if _, ok := store.FindUser(user.ID); !ok {
		t.Errorf("created user should be visible in the store")
	}
}

func TestConcurrentCreateUserIDsAreDistinct(t *testing.T) {
	svc := NewUserCommandService(repository.NewLedgerStore(), nil)

	const n = 200
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- svc.CreateUser().ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Errorf("user id %d allocated twice", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d distinct ids, got %d", n, len(seen))
	}
}
