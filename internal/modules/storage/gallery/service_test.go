package gallery

import (
	"context"
	"io"
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

type fakeStore struct {
	uploads    []string
	removes    []string
	failRemove bool
}

func (f *fakeStore) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	f.uploads = append(f.uploads, key)
	return "https://cdn.test.local/" + key, nil
}

func (f *fakeStore) Remove(_ context.Context, key string) error {
	f.removes = append(f.removes, key)
	if f.failRemove {
		return assert.AnError
	}
	return nil
}

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
	require.NoError(t, db.AutoMigrate(&models.GalleryImageModel{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM images")
	})
	return db
}

func TestDeleteRemovesRowThenObject(t *testing.T) {
	db := testDB(t)
	store := &fakeStore{}
	svc := NewService(db, store, zap.NewNop())

	image := models.GalleryImageModel{
		URL:      "https://cdn.test.local/abc123_1700000000000.png",
		Filename: "team.png",
	}
	require.NoError(t, db.Create(&image).Error)

	deleted, err := svc.Delete(context.Background(), image.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"abc123_1700000000000.png"}, store.removes)

	var count int64
	db.Model(&models.GalleryImageModel{}).Where("id = ?", image.ID).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteSurvivesStorageFailure(t *testing.T) {
	db := testDB(t)
	store := &fakeStore{failRemove: true}
	svc := NewService(db, store, zap.NewNop())

	image := models.GalleryImageModel{
		URL:      "https://cdn.test.local/def456_1700000000001.jpg",
		Filename: "office.jpg",
	}
	require.NoError(t, db.Create(&image).Error)

	deleted, err := svc.Delete(context.Background(), image.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var count int64
	db.Model(&models.GalleryImageModel{}).Where("id = ?", image.ID).Count(&count)
	assert.Zero(t, count, "row must stay deleted even when storage removal fails")
}

func TestDeleteMissingRow(t *testing.T) {
	db := testDB(t)
	svc := NewService(db, &fakeStore{}, zap.NewNop())

	deleted, err := svc.Delete(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.False(t, deleted)
}
