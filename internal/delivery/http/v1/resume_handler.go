package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

const resumeSubdir = "resumes"

var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

type ResumeHandler struct {
	resumeUC    domain.ResumeUsecase
	candidateUC domain.CandidateUsecase
	store       *storage.LocalStore
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase, candidateUC domain.CandidateUsecase, store *storage.LocalStore) {
	handler := &ResumeHandler{resumeUC: resumeUC, candidateUC: candidateUC, store: store}

	resumes := protected.Group("/candidates/resumes")
	{
		resumes.GET("", handler.List)
		resumes.POST("", handler.Create)
		resumes.PUT("/:id", handler.Update)
		resumes.DELETE("/:id", handler.Delete)
		resumes.POST("/:id/set_primary", handler.SetPrimary)
	}
}

// currentCandidateID resolves the caller's candidate profile; candidates
// only, everyone else is forbidden.
func (h *ResumeHandler) currentCandidateID(c *gin.Context) (int64, error) {
	userID := c.GetInt64(string(domain.KeyUserID))
	candidate, err := h.candidateUC.RequireByUser(c.Request.Context(), userID)
	if err != nil {
		return 0, err
	}
	return candidate.ID, nil
}

func (h *ResumeHandler) saveResumeFile(candidateID int64, fileHeader *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedResumeExtensions[ext] {
		return "", apperror.BadRequest("Only PDF and DOCX files are allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", apperror.Internal(err)
	}
	defer file.Close()

	filename, err := h.store.Save(resumeSubdir, fmt.Sprintf("candidate_%d", candidateID), fileHeader.Filename, file)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return filename, nil
}

func (h *ResumeHandler) List(c *gin.Context) {
	candidateID, err := h.currentCandidateID(c)
	if err != nil {
		c.Error(err)
		return
	}
	resumes, err := h.resumeUC.ListMine(c.Request.Context(), candidateID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume list", resumes)
}

func (h *ResumeHandler) Create(c *gin.Context) {
	candidateID, err := h.currentCandidateID(c)
	if err != nil {
		c.Error(err)
		return
	}

	resume := &domain.Resume{
		Type:      c.PostForm("resume_type"),
		IsPrimary: c.PostForm("is_primary") == "true",
	}
	if content := c.PostForm("resume_content"); content != "" {
		resume.Content = &content
	}
	if letter := c.PostForm("recommendation_letter"); letter != "" {
		resume.RecommendationLetter = &letter
	}

	if fileHeader, err := c.FormFile("resume_file"); err == nil {
		filename, err := h.saveResumeFile(candidateID, fileHeader)
		if err != nil {
			c.Error(err)
			return
		}
		resume.File = &filename
	}

	if err := h.resumeUC.Create(c.Request.Context(), candidateID, resume); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Resume created", resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	candidateID, err := h.currentCandidateID(c)
	if err != nil {
		c.Error(err)
		return
	}
	resumeID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	resume := &domain.Resume{
		Type: c.PostForm("resume_type"),
	}
	if content, ok := c.GetPostForm("resume_content"); ok {
		resume.Content = &content
	}
	if letter, ok := c.GetPostForm("recommendation_letter"); ok {
		resume.RecommendationLetter = &letter
	}
	if primary, ok := c.GetPostForm("is_primary"); ok {
		resume.IsPrimary, _ = strconv.ParseBool(primary)
	}

	if fileHeader, err := c.FormFile("resume_file"); err == nil {
		filename, err := h.saveResumeFile(candidateID, fileHeader)
		if err != nil {
			c.Error(err)
			return
		}
		resume.File = &filename
	}

	updated, err := h.resumeUC.Update(c.Request.Context(), candidateID, resumeID, resume)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume updated", updated)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	candidateID, err := h.currentCandidateID(c)
	if err != nil {
		c.Error(err)
		return
	}
	resumeID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.resumeUC.Delete(c.Request.Context(), candidateID, resumeID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume deleted", nil)
}

func (h *ResumeHandler) SetPrimary(c *gin.Context) {
	candidateID, err := h.currentCandidateID(c)
	if err != nil {
		c.Error(err)
		return
	}
	resumeID, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.resumeUC.SetPrimary(c.Request.Context(), candidateID, resumeID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Set as primary successfully", nil)
}
