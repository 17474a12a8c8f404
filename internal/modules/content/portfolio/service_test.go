package portfolio

import (
	"database/sql"
	"os"
	"testing"

	"github.com/aurelia-studio/site-core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PortfolioProjectModel{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM portfolio_projects")
	})
	return db
}

// brokenDB returns a gorm handle whose underlying connection is closed, so
// every query fails.
func brokenDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("mysql", "user:pass@tcp(127.0.0.1:1)/none")
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestCreateSurfacesSlugCheckError(t *testing.T) {
	svc := NewService(brokenDB(t))

	_, err := svc.Create(&CreateProjectDTO{Title: "Unreachable"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlugTaken)
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc := NewService(testDB(t))

	_, err := svc.Create(&CreateProjectDTO{Title: "DeFi Protocol Launch", Year: "2025"})
	require.NoError(t, err)

	_, err = svc.Create(&CreateProjectDTO{Title: "DeFi Protocol Launch", Year: "2026"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}
