package offering

import (
	"errors"

	"github.com/aurelia-studio/site-core/internal/models"
	"gorm.io/gorm"
)

type CreateServiceDTO struct {
	Title       string   `json:"title"       binding:"required"`
	Description string   `json:"description" binding:"required"`
	Features    []string `json:"features"`
	Price       string   `json:"price"`
	Icon        string   `json:"icon"`
}

type UpdateServiceDTO struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Features    *[]string `json:"features"`
	Price       *string   `json:"price"`
	Icon        *string   `json:"icon"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns offerings in insertion order, which is the order the
// storefront renders its pricing cards in.
func (s *Service) List() ([]models.ServiceModel, error) {
	var offerings []models.ServiceModel
	return offerings, s.db.Order("created_at ASC").Find(&offerings).Error
}

func (s *Service) GetByID(id string) (*models.ServiceModel, error) {
	var offering models.ServiceModel
	if err := s.db.First(&offering, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offering, nil
}

func (s *Service) Create(dto *CreateServiceDTO) (*models.ServiceModel, error) {
	offering := models.ServiceModel{
		Title:       dto.Title,
		Description: dto.Description,
		Features:    models.StringArray(dto.Features),
		Price:       dto.Price,
		Icon:        NormalizeIcon(dto.Icon),
	}
	return &offering, s.db.Create(&offering).Error
}

func (s *Service) Update(id string, dto *UpdateServiceDTO) (*models.ServiceModel, error) {
	offering, err := s.GetByID(id)
	if err != nil || offering == nil {
		return offering, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Features != nil {
		updates["features"] = models.StringArray(*dto.Features)
	}
	if dto.Price != nil {
		updates["price"] = *dto.Price
	}
	if dto.Icon != nil {
		updates["icon"] = NormalizeIcon(*dto.Icon)
	}
	if len(updates) == 0 {
		return offering, nil
	}
	return offering, s.db.Model(offering).Updates(updates).Error
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.ServiceModel{}, "id = ?", id).Error
}

// Replace wipes the table and inserts the given rows in one transaction.
// Offerings have no natural key, so seeding replaces rather than upserts.
func (s *Service) Replace(offerings []models.ServiceModel) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.ServiceModel{}).Error; err != nil {
			return err
		}
		if len(offerings) == 0 {
			return nil
		}
		for i := range offerings {
			offerings[i].Icon = NormalizeIcon(offerings[i].Icon)
		}
		return tx.Create(&offerings).Error
	})
}
