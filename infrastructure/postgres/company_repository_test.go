package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"companydocs/domain/apperrors"
	"companydocs/domain/models"
)

func TestCompanyRepositoryFinders(t *testing.T) {
	db := testDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	owner := testUser(t, db, "owner@example.com")
	company := testCompany(t, db, owner.ID, "12345678000199", "Acme Ltda", "contact@acme.com")

	tests := []struct {
		name string
		find func() (*models.Company, error)
	}{
		{"by id", func() (*models.Company, error) { return repo.GetByID(ctx, company.ID) }},
		{"by cnpj", func() (*models.Company, error) { return repo.GetByCnpj(ctx, "12345678000199") }},
		{"by legal name", func() (*models.Company, error) { return repo.GetByLegalName(ctx, "Acme Ltda") }},
		{"by trade name", func() (*models.Company, error) { return repo.GetByTradeName(ctx, "Acme Ltda Trade") }},
		{"by email", func() (*models.Company, error) { return repo.GetByEmail(ctx, "contact@acme.com") }},
		{"by phone", func() (*models.Company, error) { return repo.GetByPhone(ctx, "11987654321") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.find()
			require.NoError(t, err)
			assert.Equal(t, company.ID, got.ID)
		})
	}

	_, err := repo.GetByCnpj(ctx, "00000000000000")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCompanyRepositoryUniqueColumns(t *testing.T) {
	db := testDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	owner := testUser(t, db, "owner@example.com")
	testCompany(t, db, owner.ID, "12345678000199", "Acme Ltda", "contact@acme.com")

	base := func() *models.Company {
		return &models.Company{
			ID:        uuid.New(),
			UserID:    owner.ID,
			Cnpj:      "98765432000188",
			LegalName: "Other Ltda",
			Email:     "other@other.com",
			Phone:     "11911111111",
			Address:   "Rua Outra 1",
			Size:      "EPP",
		}
	}

	dupCnpj := base()
	dupCnpj.Cnpj = "12345678000199"
	assert.True(t, apperrors.IsDuplicate(repo.Create(ctx, dupCnpj)))

	dupLegal := base()
	dupLegal.LegalName = "Acme Ltda"
	assert.True(t, apperrors.IsDuplicate(repo.Create(ctx, dupLegal)))

	dupEmail := base()
	dupEmail.Email = "contact@acme.com"
	assert.True(t, apperrors.IsDuplicate(repo.Create(ctx, dupEmail)))

	// phone and trade name are not unique
	dupPhone := base()
	dupPhone.TradeName = "Acme Ltda Trade"
	dupPhone.Phone = "11987654321"
	assert.NoError(t, repo.Create(ctx, dupPhone))
}

func TestCompanyRepositoryListBySizeAndOwner(t *testing.T) {
	db := testDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	alice := testUser(t, db, "alice@example.com")
	bob := testUser(t, db, "bob@example.com")

	c1 := testCompany(t, db, alice.ID, "11111111000111", "Alpha Ltda", "a@alpha.com")
	c2 := testCompany(t, db, alice.ID, "22222222000122", "Beta Ltda", "b@beta.com")
	c3 := testCompany(t, db, bob.ID, "33333333000133", "Gamma Ltda", "g@gamma.com")

	bySize, err := repo.ListBySize(ctx, "ME")
	require.NoError(t, err)
	assert.Len(t, bySize, 3)

	aliceCompanies, err := repo.ListByUserID(ctx, alice.ID)
	require.NoError(t, err)
	ids := []uuid.UUID{}
	for _, c := range aliceCompanies {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []uuid.UUID{c1.ID, c2.ID}, ids)
	assert.NotContains(t, ids, c3.ID)

	none, err := repo.ListByUserID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCompanyRepositoryPartialUpdate(t *testing.T) {
	db := testDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	owner := testUser(t, db, "owner@example.com")
	company := testCompany(t, db, owner.ID, "12345678000199", "Acme Ltda", "contact@acme.com")

	ok, err := repo.Update(ctx, company.ID, map[string]any{
		"size":       "EMP",
		"phone":      "11900000000",
		"updated_at": time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "EMP", got.Size)
	assert.Equal(t, "11900000000", got.Phone)
	assert.Equal(t, company.Cnpj, got.Cnpj)
	assert.Equal(t, owner.ID, got.UserID)

	ok, err = repo.Update(ctx, uuid.New(), map[string]any{"size": "EG"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompanyRepositoryDelete(t *testing.T) {
	db := testDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	owner := testUser(t, db, "owner@example.com")
	company := testCompany(t, db, owner.ID, "12345678000199", "Acme Ltda", "contact@acme.com")

	ok, err := repo.Delete(ctx, company.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Delete(ctx, company.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
