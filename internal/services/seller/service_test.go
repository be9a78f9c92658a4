package seller

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type fakeDAO struct {
	inserts int
	updates int
	deletes []int
	err     error
}

func (f *fakeDAO) Insert(_ context.Context, s *models.Seller) error {
	f.inserts++
	if f.err == nil {
		s.ID = models.IntPtr(10)
	}
	return f.err
}

func (f *fakeDAO) Update(_ context.Context, _ *models.Seller) error {
	f.updates++
	return f.err
}

func (f *fakeDAO) DeleteByID(_ context.Context, id int) error {
	f.deletes = append(f.deletes, id)
	return f.err
}

func (f *fakeDAO) FindByID(_ context.Context, _ int) (*models.Seller, error) {
	return nil, f.err
}

func (f *fakeDAO) FindAll(_ context.Context) ([]*models.Seller, error) {
	return nil, f.err
}

func (f *fakeDAO) FindByDepartment(_ context.Context, _ int) ([]*models.Seller, error) {
	return nil, f.err
}

func newSeller(name string, dep *models.Department) *models.Seller {
	s := &models.Seller{
		Name:       name,
		Email:      "ann@x.io",
		BirthDate:  models.NewDate(1990, time.January, 1),
		BaseSalary: 3000,
	}
	s.AssignDepartment(dep)
	return s
}

// ============================================================================
// Dispatch
// ============================================================================

func TestInsertOrUpdate_Dispatch(t *testing.T) {
	tests := []struct {
		name        string
		seller      *models.Seller
		wantInserts int
		wantUpdates int
	}{
		{"new seller inserts", &models.Seller{Name: "Ann"}, 1, 0},
		{"existing seller updates", &models.Seller{ID: models.IntPtr(3), Name: "Ann"}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dao := &fakeDAO{}
			svc := NewService(dao)

			require.NoError(t, svc.InsertOrUpdate(context.Background(), tt.seller))
			assert.Equal(t, tt.wantInserts, dao.inserts)
			assert.Equal(t, tt.wantUpdates, dao.updates)
			assert.NotNil(t, tt.seller.ID)
		})
	}
}

func TestDelete_MissingID(t *testing.T) {
	dao := &fakeDAO{}
	svc := NewService(dao)

	assert.ErrorIs(t, svc.Delete(context.Background(), &models.Seller{Name: "Ann"}), ErrMissingID)
	assert.ErrorIs(t, svc.Delete(context.Background(), nil), ErrMissingID)
	assert.Empty(t, dao.deletes)
}

func TestErrorsPassThrough(t *testing.T) {
	connErr := &database.ConnectionError{Op: "open connection", Err: assert.AnError}
	svc := NewService(&fakeDAO{err: connErr})
	ctx := context.Background()

	_, err := svc.FindAll(ctx)
	assert.Same(t, connErr, err)

	_, err = svc.FindByDepartment(ctx, 1)
	assert.Same(t, connErr, err)

	err = svc.Delete(ctx, &models.Seller{ID: models.IntPtr(1)})
	assert.Same(t, connErr, err)
}

// ============================================================================
// Store-backed behavior
// ============================================================================

func TestService_WithStore(t *testing.T) {
	m := database.NewManager(
		config.StaticStore(config.Store{URL: "sqlite::memory:", AutoMigrate: true}),
		database.WithLogger(zerolog.Nop()),
	)
	t.Cleanup(func() { _ = m.Close() })

	ctx := context.Background()
	books := models.NewDepartment("Books")
	require.NoError(t, database.NewDepartmentRepo(m).Insert(ctx, books))

	svc := NewService(database.NewSellerRepo(m))

	ann := newSeller("Ann", books)
	require.NoError(t, svc.InsertOrUpdate(ctx, ann))
	require.NotNil(t, ann.ID)

	list, err := svc.FindByDepartment(ctx, *books.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ann.Name, list[0].Name)
	assert.Equal(t, ann.Email, list[0].Email)
	assert.Equal(t, ann.BirthDate, list[0].BirthDate)
	assert.Equal(t, ann.BaseSalary, list[0].BaseSalary)
	assert.Equal(t, *books.ID, list[0].DepartmentID)

	ann.BaseSalary = 3500
	require.NoError(t, svc.InsertOrUpdate(ctx, ann))

	found, err := svc.FindByID(ctx, *ann.ID)
	require.NoError(t, err)
	assert.Equal(t, 3500.0, found.BaseSalary)

	require.NoError(t, svc.Delete(ctx, ann))
	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
