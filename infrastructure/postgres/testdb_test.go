package postgres

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"companydocs/domain/models"
)

// testDB runs the repository contracts against in-memory sqlite. The driver
// translates unique violations to gorm.ErrDuplicatedKey just like the
// postgres driver does, so the duplicate paths are exercised for real.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}

func testUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		ID:       uuid.New(),
		Name:     "User " + email,
		Email:    email,
		Password: "$2a$10$hashedhashedhashedhashedhashedhash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func testCompany(t *testing.T, db *gorm.DB, userID uuid.UUID, cnpj, legalName, email string) *models.Company {
	t.Helper()

	company := &models.Company{
		ID:        uuid.New(),
		UserID:    userID,
		Cnpj:      cnpj,
		LegalName: legalName,
		TradeName: legalName + " Trade",
		Email:     email,
		Phone:     "11987654321",
		Address:   "Rua Principal 100",
		Size:      "ME",
	}
	require.NoError(t, db.Create(company).Error)
	return company
}
