package booking

import (
	"errors"

	"github.com/aurelia-studio/site-core/internal/models"
	"gorm.io/gorm"
)

type CreateBookingDTO struct {
	ProjectType string `json:"project_type" binding:"required"`
	Budget      string `json:"budget"       binding:"required"`
	Date        string `json:"date"         binding:"required"`
	Time        string `json:"time"         binding:"required"`
	Name        string `json:"name"         binding:"required"`
	Email       string `json:"email"        binding:"required,email"`
	Company     string `json:"company"`
	Details     string `json:"details"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(dto *CreateBookingDTO) (*models.BookingRequestModel, error) {
	booking := models.BookingRequestModel{
		ProjectType: dto.ProjectType,
		Budget:      dto.Budget,
		Date:        dto.Date,
		Time:        dto.Time,
		Name:        dto.Name,
		Email:       dto.Email,
		Company:     dto.Company,
		Details:     dto.Details,
	}
	return &booking, s.db.Create(&booking).Error
}

// List returns booking requests for the back office, newest first.
func (s *Service) List() ([]models.BookingRequestModel, error) {
	var bookings []models.BookingRequestModel
	return bookings, s.db.Order("created_at DESC").Find(&bookings).Error
}

func (s *Service) GetByID(id string) (*models.BookingRequestModel, error) {
	var booking models.BookingRequestModel
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (s *Service) Delete(id string) error {
	return s.db.Delete(&models.BookingRequestModel{}, "id = ?", id).Error
}
