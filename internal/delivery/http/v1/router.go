package v1

import (
	"soa-bango-backend/config"
	"soa-bango-backend/internal/delivery/http/middleware"
	"soa-bango-backend/internal/domain"
	"soa-bango-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type RouterDeps struct {
	ContactUC    domain.ContactUsecase
	OrderUC      domain.OrderUsecase
	NewsletterUC domain.NewsletterUsecase
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Custom binding validators (phone format)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	NewHealthHandler(api)

	// Form endpoints are public and unauthenticated; rate limit them per IP.
	forms := api.Group("")
	forms.Use(middleware.RateLimit(middleware.RateLimitConfig{
		PerMinute: deps.Config.RateLimitPerMinute,
		Burst:     deps.Config.RateLimitBurst,
	}))
	{
		NewContactHandler(forms, deps.ContactUC)
		NewOrderHandler(forms, deps.OrderUC)
		NewNewsletterHandler(forms, deps.NewsletterUC)
	}

	// Everything else is the front-end bundle with an SPA fallback.
	r.NoRoute(StaticFallback(deps.Config.StaticDir))

	return r
}
