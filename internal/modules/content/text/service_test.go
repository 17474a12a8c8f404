package text

import (
	"database/sql"
	"os"
	"testing"

	"github.com/aurelia-studio/site-core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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
	require.NoError(t, db.AutoMigrate(&models.TextModel{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM texts")
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

func TestListMergedFallsBackToCatalogOnReadError(t *testing.T) {
	svc := NewService(brokenDB(t), zap.NewNop())

	entries := svc.ListMerged()
	require.Len(t, entries, len(Catalog))
	for i, slot := range Catalog {
		assert.Equal(t, slot.ID, entries[i].ID)
		assert.Equal(t, slot.Value, entries[i].Value)
	}
}

func TestSaveAllUpsertsByID(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, zap.NewNop())

	_, err := svc.SaveAll([]SaveTextDTO{
		{ID: "hero_title", Label: "Hero Title", Value: "First"},
	})
	require.NoError(t, err)

	entries, err := svc.SaveAll([]SaveTextDTO{
		{ID: "hero_title", Label: "Hero Title", Value: "Second"},
	})
	require.NoError(t, err)

	var count int64
	db.Model(&models.TextModel{}).Count(&count)
	assert.EqualValues(t, 1, count)

	assert.Equal(t, "Second", entries[0].Value)
}

func TestSavePartialUpdateKeepsCatalogLabel(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, zap.NewNop())

	value := "Short bio"
	row, err := svc.Save("about_me", &UpdateTextDTO{Value: &value})
	require.NoError(t, err)
	assert.Equal(t, "About Me", row.Label)
	assert.Equal(t, "Short bio", row.Value)
}
