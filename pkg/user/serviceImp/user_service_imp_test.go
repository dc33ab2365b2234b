package serviceImp

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"agriai/database"
	"agriai/entities"
	"agriai/pkg/apperr"
	"agriai/pkg/user/repositoryImp"
	"agriai/pkg/user/service"
)

func newService(t *testing.T) service.UserService {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	return NewUserService(repositoryImp.New(db))
}

func TestResolve_CreatesOnFirstUse(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Resolve(ctx, "demo-user")
	require.NoError(t, err)
	assert.Equal(t, "demo-user", u.Username)
	assert.Len(t, u.ID, 36)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("not-used")))

	again, err := svc.Resolve(ctx, "demo-user")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)
}

func TestResolve_ConcurrentFirstUseYieldsOneAccount(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	const n = 8
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := svc.Resolve(ctx, "farmer")
			if assert.NoError(t, err) {
				ids[i] = u.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestGetByID(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Resolve(ctx, "aigerim")
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "aigerim", got.Username)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateIfAbsent_KeepsExistingRow(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	r := repositoryImp.New(db)
	ctx := context.Background()

	require.NoError(t, r.CreateIfAbsent(ctx, &entities.User{Username: "dup", Password: "a"}))
	require.NoError(t, r.CreateIfAbsent(ctx, &entities.User{Username: "dup", Password: "b"}))

	u, err := r.FindByUsername(ctx, "dup")
	require.NoError(t, err)
	assert.Equal(t, "a", u.Password)
}
