package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"github.com/season-link/profiles/config"
	"github.com/season-link/profiles/internal/delivery/http/middleware"
	"github.com/season-link/profiles/internal/delivery/http/response"
	"github.com/season-link/profiles/internal/domain"
)

type RouterDeps struct {
	CandidateUC  domain.CandidateUsecase
	ExperienceUC domain.ExperienceUsecase
	ReferenceUC  domain.ReferenceUsecase
	CVUC         domain.CVUsecase
	Redis        *goredis.Client // nil: in-memory rate limiting
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limit:  deps.Config.RateLimitGlobalThreshold,
		Window: time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second,
		Redis:  deps.Redis,
	}))
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Prometheus
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Candidate creation and listing come from the public side of the
	// gateway; everything else requires the forwarded identity headers.
	public := r.Group("")

	protected := r.Group("")
	protected.Use(middleware.Identity())
	{
		NewCandidateHandler(public, protected, deps.CandidateUC)
		NewCVHandler(protected, deps.CVUC)
		NewReferenceHandler(protected, deps.ReferenceUC)
		NewExperienceHandler(protected, deps.ExperienceUC)
	}

	return r
}
