package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryUC domain.CategoryUsecase
}

func NewCategoryHandler(public *gin.RouterGroup, categoryUC domain.CategoryUsecase) {
	handler := &CategoryHandler{categoryUC: categoryUC}
	public.GET("/categories", handler.List)
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Category list", categories)
}
