package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/idea-incubator/internal/services"
  "github.com/yungbote/idea-incubator/internal/types"
)

type AuthHandler struct {
  authService       services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
  return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
  var req struct {
    Username    string      `json:"username" binding:"required"`
    Email       string      `json:"email" binding:"required"`
    Password    string      `json:"password" binding:"required"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  user := types.User{
    Username: req.Username,
    Email:    req.Email,
    Password: req.Password,
  }
  if err := ah.authService.RegisterUser(c.Request.Context(), &user); err != nil {
    RespondError(c, http.StatusBadRequest, "registration_failed", err)
    return
  }
  RespondCreated(c, gin.H{
    "id":       user.ID,
    "username": user.Username,
    "email":    user.Email,
    "role":     user.Role,
  })
}

func (ah *AuthHandler) Login(c *gin.Context) {
  var req struct {
    Username      string      `json:"username" binding:"required"`
    Password      string      `json:"password" binding:"required"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", err)
    return
  }
  accessToken, refreshToken, err := ah.authService.LoginUser(c.Request.Context(), req.Username, req.Password)
  if err != nil {
    RespondError(c, http.StatusUnauthorized, "login_failed", err)
    return
  }
  expiresIn := int(ah.authService.GetAccessTTL().Seconds())
  RespondOK(c, gin.H{
    "access_token":  accessToken,
    "refresh_token": refreshToken,
    "token_type":    "bearer",
    "expires_in":    expiresIn,
  })
}

func (ah *AuthHandler) Refresh(c *gin.Context) {
  accessToken, refreshToken, err := ah.authService.RefreshUser(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusUnauthorized, "refresh_failed", err)
    return
  }
  expiresIn := int(ah.authService.GetAccessTTL().Seconds())
  RespondOK(c, gin.H{
    "access_token":  accessToken,
    "refresh_token": refreshToken,
    "token_type":    "bearer",
    "expires_in":    expiresIn,
  })
}

func (ah *AuthHandler) Logout(c *gin.Context) {
  if err := ah.authService.LogoutUser(c.Request.Context()); err != nil {
    RespondError(c, http.StatusBadRequest, "logout_failed", err)
    return
  }
  RespondOK(c, gin.H{"message": "logged out successfully"})
}
