package v1

import (
	"net/http"
	"strconv"
	"time"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Public routes: open jobs only
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.ListOpen)
		publicJobs.GET("/:id", handler.Get)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.GET("/my", handler.ListMine)
		protectedJobs.POST("", handler.Create)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.DELETE("/:id", handler.Delete)
	}
}

type JobRequest struct {
	Title              string  `json:"title" binding:"required"`
	JobType            string  `json:"job_type" binding:"required"`
	Level              string  `json:"level"`
	PositionNumber     *int    `json:"position_number"`
	SalaryRange        *string `json:"salary_range"`
	Location           *string `json:"location"`
	Description        string  `json:"description" binding:"required"`
	ExperienceRequired string  `json:"experience_required" binding:"required"`
	ClosingDate        *string `json:"closing_date"` // YYYY-MM-DD
	Status             string  `json:"status"`
	CategoryIDs        []int64 `json:"category_ids"`
}

func (r *JobRequest) toDomain() (*domain.Job, error) {
	job := &domain.Job{
		Title:              r.Title,
		Type:               r.JobType,
		Level:              r.Level,
		PositionNumber:     r.PositionNumber,
		SalaryRange:        r.SalaryRange,
		Location:           r.Location,
		Description:        r.Description,
		ExperienceRequired: r.ExperienceRequired,
		Status:             r.Status,
	}
	if r.ClosingDate != nil {
		closing, err := time.Parse("2006-01-02", *r.ClosingDate)
		if err != nil {
			return nil, apperror.BadRequest("closing_date must be YYYY-MM-DD")
		}
		job.ClosingDate = &closing
	}
	return job, nil
}

func (h *JobHandler) Create(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers or admins can create jobs"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	job, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.jobUC.Create(c.Request.Context(), userID, job, req.CategoryIDs); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) ListOpen(c *gin.Context) {
	offset, limit := pagination(c, 50)
	jobs, err := h.jobUC.ListOpen(c.Request.Context(), offset, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Open jobs", jobs)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can access their job list"))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	offset, limit := pagination(c, 20)
	jobs, err := h.jobUC.ListMine(c.Request.Context(), userID, offset, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My jobs", jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	job, err := h.jobUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}
	job, err := req.toDomain()
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	updated, err := h.jobUC.Update(c.Request.Context(), userID, id, job, req.CategoryIDs)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", updated)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.jobUC.Delete(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}

func pagination(c *gin.Context, defaultLimit int) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = defaultLimit
	}
	return offset, limit
}
