package valueprop

import (
	"errors"

	"github.com/aurelia-studio/site-core/internal/models"
	"gorm.io/gorm"
)

type CreateValuePropDTO struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description" binding:"required"`
	OrderIndex  int    `json:"order_index"`
}

type UpdateValuePropDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns value props in display order.
func (s *Service) List() ([]models.ValuePropModel, error) {
	var props []models.ValuePropModel
	return props, s.db.Order("order_index ASC, created_at ASC").Find(&props).Error
}

func (s *Service) GetByID(id string) (*models.ValuePropModel, error) {
	var prop models.ValuePropModel
	if err := s.db.First(&prop, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prop, nil
}

func (s *Service) Create(dto *CreateValuePropDTO) (*models.ValuePropModel, error) {
	prop := models.ValuePropModel{
		Title:       dto.Title,
		Description: dto.Description,
		OrderIndex:  dto.OrderIndex,
	}
	return &prop, s.db.Create(&prop).Error
}

func (s *Service) Update(id string, dto *UpdateValuePropDTO) (*models.ValuePropModel, error) {
	prop, err := s.GetByID(id)
	if err != nil || prop == nil {
		return prop, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.OrderIndex != nil {
		updates["order_index"] = *dto.OrderIndex
	}
	if len(updates) == 0 {
		return prop, nil
	}
	return prop, s.db.Model(prop).Updates(updates).Error
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.ValuePropModel{}, "id = ?", id).Error
}

// Replace wipes the table and inserts the given rows in one transaction.
func (s *Service) Replace(props []models.ValuePropModel) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.ValuePropModel{}).Error; err != nil {
			return err
		}
		if len(props) == 0 {
			return nil
		}
		return tx.Create(&props).Error
	})
}
