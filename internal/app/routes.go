package app

import (
	"github.com/aurelia-studio/site-core/internal/middleware"
	"github.com/aurelia-studio/site-core/internal/modules/aggregate"
	"github.com/aurelia-studio/site-core/internal/modules/auth"
	"github.com/aurelia-studio/site-core/internal/modules/content/blog"
	"github.com/aurelia-studio/site-core/internal/modules/content/offering"
	"github.com/aurelia-studio/site-core/internal/modules/content/portfolio"
	"github.com/aurelia-studio/site-core/internal/modules/content/text"
	"github.com/aurelia-studio/site-core/internal/modules/content/valueprop"
	"github.com/aurelia-studio/site-core/internal/modules/inbox/booking"
	"github.com/aurelia-studio/site-core/internal/modules/inbox/contact"
	"github.com/aurelia-studio/site-core/internal/modules/storage/gallery"
	"github.com/aurelia-studio/site-core/internal/modules/system/health"
	pkgredis "github.com/aurelia-studio/site-core/internal/pkg/redis"
	"github.com/aurelia-studio/site-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Token parsing runs before the rate limiter so admin traffic is exempt.
	r.Use(middleware.OptionalAuth())
	r.Use(middleware.RateLimit(rc.Raw()))
	r.Use(middleware.Idempotence(rc.Raw()))

	api := r.Group("/api/v1")
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		SkipPaths: []string{
			"/api/v1/admin/*",
			"/api/v1/auth/*",
			"/api/v1/health",
		},
	}))

	health.RegisterRoutes(api, db, rc)

	authSvc := auth.NewService(a.cfg.AdminPassword)
	auth.NewHandler(authSvc).RegisterRoutes(api, authMW)

	textSvc := text.NewService(db, a.logger)
	offeringSvc := offering.NewService(db)
	valuePropSvc := valueprop.NewService(db)

	blog.NewHandler(blog.NewService(db)).RegisterRoutes(api, authMW)
	portfolio.NewHandler(portfolio.NewService(db)).RegisterRoutes(api, authMW)
	offering.NewHandler(offeringSvc).RegisterRoutes(api, authMW)
	valueprop.NewHandler(valuePropSvc).RegisterRoutes(api, authMW)
	text.NewHandler(textSvc).RegisterRoutes(api, authMW)
	booking.NewHandler(booking.NewService(db)).RegisterRoutes(api, authMW)
	contact.NewHandler(contact.NewService(db)).RegisterRoutes(api, authMW)

	var store gallery.ObjectStore
	if a.store != nil {
		store = a.store
	}
	gallerySvc := gallery.NewService(db, store, a.logger)
	gallery.NewHandler(gallerySvc).RegisterRoutes(api, authMW)

	aggregateSvc := aggregate.NewService(db, textSvc, offeringSvc, valuePropSvc, a.logger)
	aggregate.NewHandler(aggregateSvc).RegisterRoutes(api)

	api.GET("/clean_cache", authMW, func(c *gin.Context) {
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), rc.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{"deleted": deleted})
	})
}
