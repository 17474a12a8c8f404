package text

import (
	"errors"
	"strings"

	"github.com/aurelia-studio/site-core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaveTextDTO struct {
	ID    string `json:"id" binding:"required"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type UpdateTextDTO struct {
	Label *string `json:"label"`
	Value *string `json:"value"`
}

type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewService(db *gorm.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

// ListMerged returns the full dictionary: catalog defaults overlaid with
// whatever has been saved. A read failure degrades to the pure catalog so
// every catalog id still yields an entry.
func (s *Service) ListMerged() []Entry {
	var rows []models.TextModel
	if err := s.db.Find(&rows).Error; err != nil {
		s.log.Warn("text read failed, serving catalog defaults", zap.Error(err))
		return Merge(nil)
	}
	return Merge(rows)
}

func (s *Service) GetByID(id string) (*models.TextModel, error) {
	var row models.TextModel
	if err := s.db.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// SaveAll upserts the given entries keyed by their symbolic ID.
func (s *Service) SaveAll(entries []SaveTextDTO) ([]Entry, error) {
	rows := make([]models.TextModel, 0, len(entries))
	for _, entry := range entries {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			continue
		}
		rows = append(rows, models.TextModel{
			ID:    id,
			Label: entry.Label,
			Value: entry.Value,
		})
	}
	if len(rows) > 0 {
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "value"}),
		}).Create(&rows).Error
		if err != nil {
			return nil, err
		}
	}
	return s.ListMerged(), nil
}

// Save upserts a single entry.
func (s *Service) Save(id string, dto *UpdateTextDTO) (*models.TextModel, error) {
	row := models.TextModel{ID: id}
	if existing, err := s.GetByID(id); err != nil {
		return nil, err
	} else if existing != nil {
		row = *existing
	} else if slot, ok := catalogSlot(id); ok {
		row.Label = slot.Label
		row.Value = slot.Value
	}

	if dto.Label != nil {
		row.Label = *dto.Label
	}
	if dto.Value != nil {
		row.Value = *dto.Value
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"label", "value"}),
	}).Create(&row).Error
	return &row, err
}

func catalogSlot(id string) (Entry, bool) {
	for _, slot := range Catalog {
		if slot.ID == id {
			return slot, true
		}
	}
	return Entry{}, false
}
