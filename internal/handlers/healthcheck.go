package handlers

import (
  "github.com/gin-gonic/gin"
)

type HealthcheckHandler struct{}

func NewHealthcheckHandler() *HealthcheckHandler {
  return &HealthcheckHandler{}
}

func (hh *HealthcheckHandler) Healthcheck(c *gin.Context) {
  RespondOK(c, gin.H{"status": "ok"})
}
