package v1_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"jobboard-backend/internal/delivery/http/middleware"
	v1 "jobboard-backend/internal/delivery/http/v1"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/logger"
	"jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

type MockEmployerUC struct {
	mock.Mock
}

func (m *MockEmployerUC) List(ctx context.Context, offset, limit int) ([]domain.Employer, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employer), args.Error(1)
}
func (m *MockEmployerUC) Get(ctx context.Context, id int64) (*domain.Employer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}
func (m *MockEmployerUC) GetByUser(ctx context.Context, userID int64) (*domain.Employer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}
func (m *MockEmployerUC) Update(ctx context.Context, userID int64, role string, employer *domain.Employer) (*domain.Employer, error) {
	args := m.Called(ctx, userID, role, employer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}
func (m *MockEmployerUC) SetLogo(ctx context.Context, userID int64, role string, employerID int64, filename string) error {
	return m.Called(ctx, userID, role, employerID, filename).Error(0)
}
func (m *MockEmployerUC) Deactivate(ctx context.Context, userID int64, role string, id int64) error {
	return m.Called(ctx, userID, role, id).Error(0)
}

func employerRouter(t *testing.T, employerUC *MockEmployerUC, userID int64, role string) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uploadDir := t.TempDir()
	store, err := storage.NewLocalStore(uploadDir)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	protected := r.Group("/v1")
	protected.Use(func(c *gin.Context) {
		c.Set(string(domain.KeyUserID), userID)
		c.Set(string(domain.KeyUserRole), role)
	})
	v1.NewEmployerHandler(protected, employerUC, store)
	return r, uploadDir
}

func logoUploadRequest(t *testing.T, url string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("company_logo", "logo.png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(part, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func storedLogos(t *testing.T, uploadDir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(uploadDir, "employers"))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return entries
}

func TestUploadLogo(t *testing.T) {
	t.Run("Should store the logo and link it to the employer", func(t *testing.T) {
		employerUC := new(MockEmployerUC)
		r, uploadDir := employerRouter(t, employerUC, 10, domain.RoleEmployer)

		employerUC.On("SetLogo", mock.Anything, int64(10), domain.RoleEmployer, int64(1), mock.Anything).Return(nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, logoUploadRequest(t, "/v1/employers/1/logo"))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, storedLogos(t, uploadDir), 1)
	})

	t.Run("Should leave no file behind when the caller does not own the employer", func(t *testing.T) {
		employerUC := new(MockEmployerUC)
		r, uploadDir := employerRouter(t, employerUC, 20, domain.RoleEmployer)

		employerUC.On("SetLogo", mock.Anything, int64(20), domain.RoleEmployer, int64(1), mock.Anything).
			Return(apperror.Forbidden("You can only update your own employer profile"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, logoUploadRequest(t, "/v1/employers/1/logo"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, storedLogos(t, uploadDir))
	})

	t.Run("Should reject a file that is not an image", func(t *testing.T) {
		employerUC := new(MockEmployerUC)
		r, uploadDir := employerRouter(t, employerUC, 10, domain.RoleEmployer)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("company_logo", "logo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("not an image"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/employers/1/logo", &body)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, storedLogos(t, uploadDir))
		employerUC.AssertNotCalled(t, "SetLogo", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
