package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := protected.Group("/candidates")
	{
		candidates.POST("", handler.Upsert)
		candidates.PUT("", handler.Upsert)
		candidates.GET("/me", handler.Me)
		candidates.GET("/:id", handler.Get)
		candidates.DELETE("/:id", handler.Delete)
	}
}

type UpsertCandidateRequest struct {
	Status      string  `json:"status"`
	Description *string `json:"description"`

	// Extended profile fields
	JobCategoryID   *int64   `json:"job_category_id"`
	ExperienceLevel *string  `json:"experience_level"`
	ExpectedSalary  *string  `json:"expected_salary"`
	AboutMe         *string  `json:"about_me"`
	CareerObjective *string  `json:"career_objective"`
	Experience      *string  `json:"experience"`
	Education       *string  `json:"education"`
	Skills          []string `json:"skills"`
	Languages       []string `json:"languages"`
	ReferenceText   *string  `json:"reference_text"`
}

func (h *CandidateHandler) Upsert(c *gin.Context) {
	var req UpsertCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	if req.Status != "" && req.Status != domain.CandidateStatusActive && req.Status != domain.CandidateStatusInactive {
		c.Error(apperror.BadRequest("status must be 'Active' or 'Inactive'"))
		return
	}

	candidate := &domain.Candidate{
		Status:      req.Status,
		Description: req.Description,
	}
	profile := &domain.CandidateProfile{
		JobCategoryID:   req.JobCategoryID,
		ExperienceLevel: req.ExperienceLevel,
		ExpectedSalary:  req.ExpectedSalary,
		AboutMe:         req.AboutMe,
		CareerObjective: req.CareerObjective,
		Experience:      req.Experience,
		Education:       req.Education,
		Skills:          req.Skills,
		Languages:       req.Languages,
		ReferenceText:   req.ReferenceText,
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	saved, err := h.candidateUC.Upsert(c.Request.Context(), userID, candidate, profile)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Candidate profile saved", saved)
}

func (h *CandidateHandler) Me(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	candidate, err := h.candidateUC.GetMine(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My candidate profile", candidate)
}

func (h *CandidateHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	candidate, err := h.candidateUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate details", candidate)
}

func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.candidateUC.Delete(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidate profile deleted", nil)
}
