package portfolio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aurelia-studio/site-core/internal/models"
	"github.com/aurelia-studio/site-core/internal/pkg/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSlugTaken = errors.New("slug already exists")

type CreateProjectDTO struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category"`
	Metric      string `json:"metric"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Year        string `json:"year"`
}

type UpdateProjectDTO struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Metric      *string `json:"metric"`
	Description *string `json:"description"`
	Slug        *string `json:"slug"`
	Year        *string `json:"year"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns every project, newest year first.
func (s *Service) List() ([]models.PortfolioProjectModel, error) {
	var projects []models.PortfolioProjectModel
	return projects, s.db.Order("year DESC, created_at DESC").Find(&projects).Error
}

// ListAll returns every project for the back office, newest row first.
func (s *Service) ListAll() ([]models.PortfolioProjectModel, error) {
	var projects []models.PortfolioProjectModel
	return projects, s.db.Order("created_at DESC").Find(&projects).Error
}

func (s *Service) GetBySlug(slugValue string) (*models.PortfolioProjectModel, error) {
	var project models.PortfolioProjectModel
	if err := s.db.First(&project, "slug = ?", slugValue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (s *Service) GetByID(id string) (*models.PortfolioProjectModel, error) {
	var project models.PortfolioProjectModel
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

func (s *Service) Create(dto *CreateProjectDTO) (*models.PortfolioProjectModel, error) {
	slugValue := slug.Resolve(dto.Slug, dto.Title)
	if slugValue == "" {
		return nil, fmt.Errorf("cannot derive a slug from title %q", dto.Title)
	}

	var count int64
	if err := s.db.Model(&models.PortfolioProjectModel{}).Where("slug = ?", slugValue).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	project := models.PortfolioProjectModel{
		Title:       dto.Title,
		Category:    dto.Category,
		Metric:      dto.Metric,
		Description: dto.Description,
		Slug:        slugValue,
		Year:        dto.Year,
	}
	return &project, s.db.Create(&project).Error
}

func (s *Service) Update(id string, dto *UpdateProjectDTO) (*models.PortfolioProjectModel, error) {
	project, err := s.GetByID(id)
	if err != nil || project == nil {
		return project, err
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
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.Metric != nil {
		updates["metric"] = *dto.Metric
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Year != nil {
		updates["year"] = *dto.Year
	}
	if len(updates) == 0 {
		return project, nil
	}
	return project, s.db.Model(project).Updates(updates).Error
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.PortfolioProjectModel{}, "id = ?", id).Error
}

// Upsert bulk-writes projects keyed by slug, overwriting content columns on
// conflict so re-seeding is idempotent.
func (s *Service) Upsert(projects []models.PortfolioProjectModel) error {
	if len(projects) == 0 {
		return nil
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "category", "metric", "description", "year",
		}),
	}).Create(&projects).Error
}
