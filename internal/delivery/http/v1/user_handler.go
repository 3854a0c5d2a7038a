package v1

import (
	"net/http"
	"time"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authUC domain.AuthUsecase
	userUC domain.UserUsecase
}

func NewUserHandler(public *gin.RouterGroup, protected *gin.RouterGroup, login gin.HandlerFunc, authUC domain.AuthUsecase, userUC domain.UserUsecase) {
	handler := &UserHandler{authUC: authUC, userUC: userUC}

	publicUsers := public.Group("/users")
	{
		publicUsers.POST("/login", login, handler.Login)
		publicUsers.POST("/register", handler.Register)
		publicUsers.POST("/verify_token", handler.VerifyToken)
		publicUsers.POST("/logout", handler.Logout)
	}

	protectedUsers := protected.Group("/users")
	{
		protectedUsers.GET("", handler.List)
		protectedUsers.POST("", handler.Upsert)
		protectedUsers.DELETE("", handler.Deactivate)
		protectedUsers.GET("/me", handler.Me)
		protectedUsers.POST("/change_password", handler.ChangePassword)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	Role        string  `json:"role" binding:"required,oneof=candidate employer"`
	Gender      *string `json:"gender"`
	Phone       *string `json:"phone" binding:"omitempty,phone"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
	Address     *string `json:"address"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	token, user, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password, c.ClientIP())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"access_token": token,
		"user_type":    user.Role,
		"user":         user,
	})
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	user := &domain.User{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Gender:  req.Gender,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			c.Error(apperror.BadRequest("date_of_birth must be YYYY-MM-DD"))
			return
		}
		user.DateOfBirth = &dob
	}

	if err := h.authUC.Register(c.Request.Context(), user, req.Password); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "User registered", user)
}

type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// VerifyToken checks a token and extends its session when live; the bool
// result is the whole answer, expired and unknown tokens both read false.
func (h *UserHandler) VerifyToken(c *gin.Context) {
	var req VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	valid, err := h.authUC.VerifyToken(c.Request.Context(), req.Token)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, valid)
}

func (h *UserHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.Error(apperror.Unauthorized("Authorization header missing"))
		return
	}
	c.JSON(http.StatusOK, h.authUC.Logout(c.Request.Context(), token))
}

func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", user)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	userID := c.GetInt64(string(domain.KeyUserID))
	if err := h.authUC.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password changed", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userUC.ListUsers(withIdentity(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User list", users)
}

type UpsertUserRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password"`
	Role     string  `json:"role" binding:"required,oneof=admin candidate employer"`
	Gender   *string `json:"gender"`
	Phone    *string `json:"phone" binding:"omitempty,phone"`
	Address  *string `json:"address"`
}

func (h *UserHandler) Upsert(c *gin.Context) {
	var req UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	user := &domain.User{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Gender:  req.Gender,
		Phone:   req.Phone,
		Address: req.Address,
	}
	saved, err := h.userUC.UpsertUser(withIdentity(c), user, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User saved", saved)
}

type DeactivateUsersRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	var req DeactivateUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	if err := h.userUC.DeactivateUsers(withIdentity(c), req.IDs); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users deactivated", nil)
}
