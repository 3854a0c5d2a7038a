package v1

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/image/draw"
)

const (
	logoSubdir       = "employers"
	logoMaxDimension = 512
	logoJPEGQuality  = 85
	logoMaxBytes     = 5 << 20
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
	store      *storage.LocalStore
}

func NewEmployerHandler(protected *gin.RouterGroup, employerUC domain.EmployerUsecase, store *storage.LocalStore) {
	handler := &EmployerHandler{employerUC: employerUC, store: store}

	employers := protected.Group("/employers")
	{
		employers.GET("", handler.List)
		employers.GET("/profile", handler.Profile)
		employers.GET("/:id", handler.Get)
		employers.PUT("/:id", handler.Update)
		employers.DELETE("/:id", handler.Deactivate)
		employers.POST("/:id/logo", handler.UploadLogo)
	}
}

func (h *EmployerHandler) List(c *gin.Context) {
	offset, limit := pagination(c, 100)
	employers, err := h.employerUC.List(c.Request.Context(), offset, limit)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer list", employers)
}

func (h *EmployerHandler) Profile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	employer, err := h.employerUC.GetByUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer profile", employer)
}

func (h *EmployerHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	employer, err := h.employerUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer details", employer)
}

type UpdateEmployerRequest struct {
	CompanyName        string  `json:"company_name" binding:"required"`
	CompanyEmail       *string `json:"company_email"`
	CompanyContact     *string `json:"company_contact"`
	CompanyAddress     *string `json:"company_address"`
	CompanyDescription *string `json:"company_description"`
	CompanyWebsite     *string `json:"company_website"`
}

func (h *EmployerHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))
	employer := &domain.Employer{
		ID:                 id,
		CompanyName:        req.CompanyName,
		CompanyEmail:       req.CompanyEmail,
		CompanyContact:     req.CompanyContact,
		CompanyAddress:     req.CompanyAddress,
		CompanyDescription: req.CompanyDescription,
		CompanyWebsite:     req.CompanyWebsite,
	}
	updated, err := h.employerUC.Update(c.Request.Context(), userID, role, employer)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer updated", updated)
}

func (h *EmployerHandler) Deactivate(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))
	if err := h.employerUC.Deactivate(c.Request.Context(), userID, role, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employer deactivated", nil)
}

// UploadLogo accepts a multipart image, downscales it to a bounded
// thumbnail and stores it on disk before linking it to the employer.
func (h *EmployerHandler) UploadLogo(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	fileHeader, err := c.FormFile("company_logo")
	if err != nil {
		c.Error(apperror.BadRequest("company_logo file is required"))
		return
	}
	if fileHeader.Size > logoMaxBytes {
		c.Error(apperror.BadRequest("Logo must be smaller than 5 MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	resized, err := shrinkImage(data, logoMaxDimension, logoJPEGQuality)
	if err != nil {
		c.Error(apperror.BadRequest("Uploaded file is not a valid image"))
		return
	}

	filename, err := h.store.Save(logoSubdir, fmt.Sprintf("employer_%d", id), "logo.jpg", bytes.NewReader(resized))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))
	if err := h.employerUC.SetLogo(c.Request.Context(), userID, role, id, filename); err != nil {
		// The file is already on disk; don't leave an orphan behind when
		// the caller turns out not to own this employer.
		_ = h.store.Remove(logoSubdir, filename)
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logo uploaded", gin.H{"company_logo": filename})
}

// shrinkImage bounds the longest side to maxDimension, keeping aspect
// ratio, and re-encodes as JPEG.
func shrinkImage(data []byte, maxDimension, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	newWidth, newHeight := width, height
	if width >= height && width > maxDimension {
		newWidth = maxDimension
		newHeight = int(float64(height) * float64(maxDimension) / float64(width))
	} else if height > width && height > maxDimension {
		newHeight = maxDimension
		newWidth = int(float64(width) * float64(maxDimension) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
