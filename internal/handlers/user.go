package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/idea-incubator/internal/services"
)

type UserHandler struct {
  userService       services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

func (uh *UserHandler) GetMe(c *gin.Context) {
  user, err := uh.userService.GetMe(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusUnauthorized, "unauthorized", err)
    return
  }
  RespondOK(c, gin.H{
    "id":       user.ID,
    "username": user.Username,
    "email":    user.Email,
    "role":     user.Role,
  })
}
