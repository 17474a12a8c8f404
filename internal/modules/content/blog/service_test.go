package blog

import (
	"database/sql"
	"os"
	"testing"

	"github.com/aurelia-studio/site-core/internal/models"
	"github.com/aurelia-studio/site-core/internal/pkg/pagination"
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
	require.NoError(t, db.AutoMigrate(&models.BlogModel{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM blogs")
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

	_, err := svc.Create(&CreateBlogDTO{
		Title:  "Unreachable",
		Date:   "2026-01-15",
		Status: models.BlogStatusDraft,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlugTaken)
}

func TestCreateDerivesSlug(t *testing.T) {
	svc := NewService(testDB(t))

	post, err := svc.Create(&CreateBlogDTO{
		Title:  "Hello, World!",
		Date:   "2026-01-15",
		Status: models.BlogStatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, "hello-world", post.Slug)
}

func TestCreateExplicitSlugWins(t *testing.T) {
	svc := NewService(testDB(t))

	post, err := svc.Create(&CreateBlogDTO{
		Title:  "Hello, World!",
		Date:   "2026-01-15",
		Slug:   "custom-slug",
		Status: models.BlogStatusDraft,
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", post.Slug)
}

func TestCreateDuplicateSlugConflicts(t *testing.T) {
	svc := NewService(testDB(t))

	_, err := svc.Create(&CreateBlogDTO{Title: "First", Date: "2026-01-01", Slug: "same", Status: models.BlogStatusDraft})
	require.NoError(t, err)

	_, err = svc.Create(&CreateBlogDTO{Title: "Second", Date: "2026-01-02", Slug: "same", Status: models.BlogStatusDraft})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestListPublishedHidesDrafts(t *testing.T) {
	db := testDB(t)
	svc := NewService(db)

	_, err := svc.Create(&CreateBlogDTO{Title: "Visible", Date: "2026-02-01", Status: models.BlogStatusPublished})
	require.NoError(t, err)
	draft, err := svc.Create(&CreateBlogDTO{Title: "Hidden", Date: "2026-02-02", Status: models.BlogStatusDraft})
	require.NoError(t, err)

	posts, page, err := svc.ListPublished(pagination.Query{Page: 1, Size: 20})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Visible", posts[0].Title)
	assert.EqualValues(t, 1, page.Total)

	got, err := svc.GetPublishedBySlug(draft.Slug)
	require.NoError(t, err)
	assert.Nil(t, got, "drafts must not resolve by slug")
}

func TestUpdateTitleRederivesSlug(t *testing.T) {
	svc := NewService(testDB(t))

	post, err := svc.Create(&CreateBlogDTO{Title: "Old Title", Date: "2026-03-01", Status: models.BlogStatusDraft})
	require.NoError(t, err)

	title := "Brand New Title"
	updated, err := svc.Update(post.ID, &UpdateBlogDTO{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, updated)

	reloaded, err := svc.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "brand-new-title", reloaded.Slug)
}

func TestUpdateExplicitSlugBeatsTitleChange(t *testing.T) {
	svc := NewService(testDB(t))

	post, err := svc.Create(&CreateBlogDTO{Title: "Old Title", Date: "2026-03-01", Status: models.BlogStatusDraft})
	require.NoError(t, err)

	title := "Another Title"
	slug := "pinned-slug"
	_, err = svc.Update(post.ID, &UpdateBlogDTO{Title: &title, Slug: &slug})
	require.NoError(t, err)

	reloaded, err := svc.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "pinned-slug", reloaded.Slug)
}

func TestUpsertIsIdempotent(t *testing.T) {
	db := testDB(t)
	svc := NewService(db)

	rows := []models.BlogModel{
		{Title: "A", Date: "2026-01-01", Slug: "a", Status: models.BlogStatusPublished},
		{Title: "B", Date: "2026-01-02", Slug: "b", Status: models.BlogStatusPublished},
	}
	require.NoError(t, svc.Upsert(rows))

	again := []models.BlogModel{
		{Title: "A v2", Date: "2026-01-01", Slug: "a", Status: models.BlogStatusDraft},
		{Title: "B", Date: "2026-01-02", Slug: "b", Status: models.BlogStatusPublished},
	}
	require.NoError(t, svc.Upsert(again))

	var count int64
	db.Model(&models.BlogModel{}).Count(&count)
	assert.EqualValues(t, 2, count)

	got, err := svc.GetPublishedBySlug("a")
	require.NoError(t, err)
	assert.Nil(t, got, "re-seeding a slug as Draft hides it")

	var row models.BlogModel
	require.NoError(t, db.First(&row, "slug = ?", "a").Error)
	assert.Equal(t, "A v2", row.Title)
}
