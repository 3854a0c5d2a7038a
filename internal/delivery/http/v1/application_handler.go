package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	candidateUC   domain.CandidateUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase, candidateUC domain.CandidateUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC, candidateUC: candidateUC}

	applications := protected.Group("/applications")
	{
		applications.POST("", handler.Apply)
		applications.GET("/job/:id", handler.ListForJob)
		applications.GET("/job/:id/status", handler.MyStatus)
		applications.PATCH("/:id/status", handler.UpdateStatus)
	}
}

type ApplyRequest struct {
	JobID    int64  `json:"job_id" binding:"required"`
	ResumeID *int64 `json:"resume_id"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	candidate, err := h.candidateUC.RequireByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), candidate.ID, req.JobID, req.ResumeID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	offset, limit := pagination(c, 20)
	apps, err := h.applicationUC.ListForJob(c.Request.Context(), userID, jobID, offset, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications for job", apps)
}

func (h *ApplicationHandler) MyStatus(c *gin.Context) {
	jobID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	candidate, err := h.candidateUC.RequireByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.MyStatus(c.Request.Context(), candidate.ID, jobID)
	if err != nil {
		c.Error(err)
		return
	}
	if app == nil {
		response.Success(c, http.StatusOK, "Application status", gin.H{"applied": false})
		return
	}
	response.Success(c, http.StatusOK, "Application status", gin.H{
		"applied":     true,
		"application": app,
	})
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), userID, applicationID, req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application status updated", app)
}
