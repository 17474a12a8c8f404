package gallery

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"github.com/aurelia-studio/site-core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ObjectStore is the slice of the object storage client the gallery needs.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}

var ErrStorageDisabled = errors.New("object storage is not configured")

type Service struct {
	db    *gorm.DB
	store ObjectStore
	log   *zap.Logger
}

func NewService(db *gorm.DB, store ObjectStore, log *zap.Logger) *Service {
	return &Service{db: db, store: store, log: log}
}

// List returns gallery images, newest upload first.
func (s *Service) List() ([]models.GalleryImageModel, error) {
	var images []models.GalleryImageModel
	return images, s.db.Order("created_at DESC").Find(&images).Error
}

func (s *Service) GetByID(id string) (*models.GalleryImageModel, error) {
	var image models.GalleryImageModel
	if err := s.db.First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

// Upload pushes the file to object storage, then records the public URL. If
// the insert fails after the upload, the stored object is orphaned rather
// than the row pointing at nothing.
func (s *Service) Upload(ctx context.Context, header *multipart.FileHeader) (*models.GalleryImageModel, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	key := buildObjectKey(header.Filename)
	publicURL, err := s.store.Upload(ctx, key, file, detectContentType(header))
	if err != nil {
		return nil, err
	}

	image := models.GalleryImageModel{
		URL:      publicURL,
		Filename: header.Filename,
	}
	return &image, s.db.Create(&image).Error
}

// Delete removes the row first, then best-effort removes the stored object.
// A storage failure leaves an orphaned object but never resurrects the row.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	image, err := s.GetByID(id)
	if err != nil {
		return false, err
	}
	if image == nil {
		return false, nil
	}

	if err := s.db.Delete(&models.GalleryImageModel{}, "id = ?", id).Error; err != nil {
		return false, err
	}

	if s.store != nil {
		if key := keyFromURL(image.URL); key != "" {
			if err := s.store.Remove(ctx, key); err != nil {
				s.log.Warn("failed to remove stored object",
					zap.String("key", key),
					zap.Error(err))
			}
		}
	}
	return true, nil
}
