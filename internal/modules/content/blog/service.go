package blog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aurelia-studio/site-core/internal/models"
	"github.com/aurelia-studio/site-core/internal/pkg/pagination"
	"github.com/aurelia-studio/site-core/internal/pkg/response"
	"github.com/aurelia-studio/site-core/internal/pkg/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSlugTaken is returned when a create collides with an existing slug.
var ErrSlugTaken = errors.New("slug already exists")

type CreateBlogDTO struct {
	Title    string `json:"title"     binding:"required"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	Date     string `json:"date"      binding:"required"`
	ReadTime string `json:"read_time"`
	Slug     string `json:"slug"`
	Status   string `json:"status"    binding:"required,oneof=Draft Published"`
}

type UpdateBlogDTO struct {
	Title    *string `json:"title"`
	Excerpt  *string `json:"excerpt"`
	Category *string `json:"category"`
	Date     *string `json:"date"`
	ReadTime *string `json:"read_time"`
	Slug     *string `json:"slug"`
	Status   *string `json:"status" binding:"omitempty,oneof=Draft Published"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListPublished returns published posts for the public site, newest
// publication date first.
func (s *Service) ListPublished(q pagination.Query) ([]models.BlogModel, response.Pagination, error) {
	var posts []models.BlogModel
	query := s.db.Model(&models.BlogModel{}).
		Where("status = ?", models.BlogStatusPublished).
		Order("date DESC, created_at DESC")
	page, err := pagination.Paginate(query, q, &posts)
	return posts, page, err
}

// GetPublishedBySlug returns one published post, or (nil, nil) when absent or
// still a draft.
func (s *Service) GetPublishedBySlug(slugValue string) (*models.BlogModel, error) {
	var post models.BlogModel
	err := s.db.Where("slug = ? AND status = ?", slugValue, models.BlogStatusPublished).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListAll returns every post for the back office, newest row first.
func (s *Service) ListAll() ([]models.BlogModel, error) {
	var posts []models.BlogModel
	return posts, s.db.Order("created_at DESC").Find(&posts).Error
}

func (s *Service) GetByID(id string) (*models.BlogModel, error) {
	var post models.BlogModel
	if err := s.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *Service) Create(dto *CreateBlogDTO) (*models.BlogModel, error) {
	slugValue := slug.Resolve(dto.Slug, dto.Title)
	if slugValue == "" {
		return nil, fmt.Errorf("cannot derive a slug from title %q", dto.Title)
	}

	var count int64
	if err := s.db.Model(&models.BlogModel{}).Where("slug = ?", slugValue).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	post := models.BlogModel{
		Title:    dto.Title,
		Excerpt:  dto.Excerpt,
		Category: dto.Category,
		Date:     dto.Date,
		ReadTime: dto.ReadTime,
		Slug:     slugValue,
		Status:   dto.Status,
	}
	return &post, s.db.Create(&post).Error
}

// Update applies a partial update. When the title changes without an explicit
// slug in the same request, the slug is re-derived; an explicit slug always
// wins, including over a concurrent title change (last write wins).
func (s *Service) Update(id string, dto *UpdateBlogDTO) (*models.BlogModel, error) {
	post, err := s.GetByID(id)
	if err != nil || post == nil {
		return post, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
		if dto.Slug == nil {
			updates["slug"] = slug.Derive(*dto.Title)
		}
	}
	if dto.Slug != nil && strings.TrimSpace(*dto.Slug) != "" {
		updates["slug"] = strings.TrimSpace(*dto.Slug)
	}
	if dto.Excerpt != nil {
		updates["excerpt"] = *dto.Excerpt
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.Date != nil {
		updates["date"] = *dto.Date
	}
	if dto.ReadTime != nil {
		updates["read_time"] = *dto.ReadTime
	}
	if dto.Status != nil {
		updates["status"] = *dto.Status
	}
	if len(updates) == 0 {
		return post, nil
	}
	return post, s.db.Model(post).Updates(updates).Error
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.BlogModel{}, "id = ?", id).Error
}

// Upsert bulk-writes posts keyed by slug. Re-running with identical rows is a
// no-op; changed rows overwrite all content columns, so re-seeding a slug as
// Draft hides it from the public listing.
func (s *Service) Upsert(posts []models.BlogModel) error {
	if len(posts) == 0 {
		return nil
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "excerpt", "category", "date", "read_time", "status",
		}),
	}).Create(&posts).Error
}
