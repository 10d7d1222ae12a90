package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSON200(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func JSON201(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func JSON400(c *gin.Context, reason, message string) {
	jsonError(c, http.StatusBadRequest, reason, message)
}

func JSON404(c *gin.Context, reason, message string) {
	jsonError(c, http.StatusNotFound, reason, message)
}

func JSON500(c *gin.Context, reason, message string) {
	jsonError(c, http.StatusInternalServerError, reason, message)
}

func jsonError(c *gin.Context, status int, reason, message string) {
	c.JSON(status, gin.H{
		"reason": reason,
		"error":  message,
	})
}
