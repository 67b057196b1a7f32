package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"staynest/internal/core/auth"
	"staynest/internal/core/cache"
	"staynest/internal/repo"
	"staynest/internal/service"
	"staynest/internal/transport/http/handler"
	mdw "staynest/internal/transport/http/middleware"
)

// Module 公共与鉴权两个分组分开挂，/auth、/listings/all 等走公共分组
type Module interface {
	Mount(public, authed *gin.RouterGroup)
}

func NewAPIEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, c *cache.Cache) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/api")
	authed := r.Group("/api")
	authed.Use(mdw.AuthJWT(jwter))

	users := repo.NewUserRepo(db)
	listings := repo.NewListingRepo(db)
	bookings := repo.NewBookingRepo(db)
	reviews := repo.NewReviewRepo(db)

	modules := []Module{
		handler.NewAuthHandler(service.NewAuth(users, jwter)),
		handler.NewListingHandler(service.NewListing(listings, users, c)),
		handler.NewBookingHandler(service.NewBooking(bookings, listings)),
		handler.NewReviewHandler(service.NewReview(reviews, listings)),
	}
	for _, m := range modules {
		m.Mount(public, authed)
	}

	return r
}
