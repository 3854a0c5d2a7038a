package v1

import (
	"net/http"
	"time"

	"jobboard-backend/config"
	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/auth"
	"jobboard-backend/pkg/storage"
	"jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	UserUC        domain.UserUsecase
	SessionUC     domain.SessionUsecase
	JobUC         domain.JobUsecase
	CategoryUC    domain.CategoryUsecase
	EmployerUC    domain.EmployerUsecase
	CandidateUC   domain.CandidateUsecase
	ResumeUC      domain.ResumeUsecase
	ApplicationUC domain.ApplicationUsecase
	TokenIssuer   *auth.TokenIssuer
	Store         *storage.LocalStore
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Register(v)
	}

	r := gin.New()

	// Global middlewares. CORS must be first.
	r.Use(middleware.CORSMiddleware(deps.Config))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	loginLimit := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenIssuer, deps.SessionUC, deps.AuthUC))
	{
		NewUserHandler(v1, protected, loginLimit, deps.AuthUC, deps.UserUC)
		NewJobHandler(v1, protected, deps.JobUC)
		NewCategoryHandler(v1, deps.CategoryUC)
		NewEmployerHandler(protected, deps.EmployerUC, deps.Store)
		NewCandidateHandler(protected, deps.CandidateUC)
		NewResumeHandler(protected, deps.ResumeUC, deps.CandidateUC, deps.Store)
		NewApplicationHandler(protected, deps.ApplicationUC, deps.CandidateUC)
	}

	return r
}
