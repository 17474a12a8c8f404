package contact

import (
	"errors"

	"github.com/aurelia-studio/site-core/internal/models"
	"gorm.io/gorm"
)

type CreateMessageDTO struct {
	Name    string `json:"name"    binding:"required"`
	Email   string `json:"email"   binding:"required,email"`
	Company string `json:"company"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(dto *CreateMessageDTO) (*models.ContactMessageModel, error) {
	message := models.ContactMessageModel{
		Name:    dto.Name,
		Email:   dto.Email,
		Company: dto.Company,
		Subject: dto.Subject,
		Message: dto.Message,
	}
	return &message, s.db.Create(&message).Error
}

// List returns contact messages for the back office, newest first.
func (s *Service) List() ([]models.ContactMessageModel, error) {
	var messages []models.ContactMessageModel
	return messages, s.db.Order("created_at DESC").Find(&messages).Error
}

func (s *Service) GetByID(id string) (*models.ContactMessageModel, error) {
	var message models.ContactMessageModel
	if err := s.db.First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.ContactMessageModel{}, "id = ?", id).Error
}
