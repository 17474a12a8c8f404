// Package aggregate assembles the single payload the public site boots from,
// so the frontend makes one request instead of five.
package aggregate

import (
	"github.com/aurelia-studio/site-core/internal/models"
	"github.com/aurelia-studio/site-core/internal/modules/content/offering"
	"github.com/aurelia-studio/site-core/internal/modules/content/text"
	"github.com/aurelia-studio/site-core/internal/modules/content/valueprop"
	"github.com/aurelia-studio/site-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	latestPostCount    = 3
	latestProjectCount = 4
)

type Payload struct {
	Texts      []text.Entry                   `json:"texts"`
	Posts      []models.BlogModel             `json:"posts"`
	Projects   []models.PortfolioProjectModel `json:"projects"`
	Services   []models.ServiceModel          `json:"services"`
	ValueProps []models.ValuePropModel        `json:"value_props"`
}

type Service struct {
	db         *gorm.DB
	texts      *text.Service
	offerings  *offering.Service
	valueProps *valueprop.Service
	log        *zap.Logger
}

func NewService(
	db *gorm.DB,
	texts *text.Service,
	offerings *offering.Service,
	valueProps *valueprop.Service,
	log *zap.Logger,
) *Service {
	return &Service{
		db:         db,
		texts:      texts,
		offerings:  offerings,
		valueProps: valueProps,
		log:        log,
	}
}

// Build collects every section, degrading per section: a failing section
// comes back empty (texts fall back to catalog defaults) and logged instead
// of failing the whole payload.
func (s *Service) Build() Payload {
	payload := Payload{
		Texts:      []text.Entry{},
		Posts:      []models.BlogModel{},
		Projects:   []models.PortfolioProjectModel{},
		Services:   []models.ServiceModel{},
		ValueProps: []models.ValuePropModel{},
	}

	payload.Texts = s.texts.ListMerged()

	var posts []models.BlogModel
	err := s.db.
		Where("status = ?", models.BlogStatusPublished).
		Order("date DESC, created_at DESC").
		Limit(latestPostCount).
		Find(&posts).Error
	if err != nil {
		s.log.Warn("aggregate posts section failed", zap.Error(err))
	} else {
		payload.Posts = posts
	}

	var projects []models.PortfolioProjectModel
	err = s.db.
		Order("year DESC, created_at DESC").
		Limit(latestProjectCount).
		Find(&projects).Error
	if err != nil {
		s.log.Warn("aggregate projects section failed", zap.Error(err))
	} else {
		payload.Projects = projects
	}

	if offerings, err := s.offerings.List(); err != nil {
		s.log.Warn("aggregate services section failed", zap.Error(err))
	} else {
		payload.Services = offerings
	}

	if props, err := s.valueProps.List(); err != nil {
		s.log.Warn("aggregate value props section failed", zap.Error(err))
	} else {
		payload.ValueProps = props
	}

	return payload
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/aggregate", h.get)
}

func (h *Handler) get(c *gin.Context) {
	response.OK(c, h.svc.Build())
}
