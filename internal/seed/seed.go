// Package seed loads the starter content the site ships with. Posts and
// portfolio projects upsert by slug so re-running never duplicates them;
// offerings and value props have no natural key and are replaced wholesale.
package seed

import (
	"github.com/aurelia-studio/site-core/internal/modules/content/blog"
	"github.com/aurelia-studio/site-core/internal/modules/content/offering"
	"github.com/aurelia-studio/site-core/internal/modules/content/portfolio"
	"github.com/aurelia-studio/site-core/internal/modules/content/valueprop"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Run(db *gorm.DB, log *zap.Logger) error {
	if err := blog.NewService(db).Upsert(blogPosts); err != nil {
		return err
	}
	log.Info("seeded blog posts", zap.Int("count", len(blogPosts)))

	if err := portfolio.NewService(db).Upsert(portfolioProjects); err != nil {
		return err
	}
	log.Info("seeded portfolio projects", zap.Int("count", len(portfolioProjects)))

	if err := offering.NewService(db).Replace(serviceOfferings); err != nil {
		return err
	}
	log.Info("seeded service offerings", zap.Int("count", len(serviceOfferings)))

	if err := valueprop.NewService(db).Replace(valueProps); err != nil {
		return err
	}
	log.Info("seeded value props", zap.Int("count", len(valueProps)))

	return nil
}
