package controllers

import (
	"net/http"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/auth"
	"github.com/jaekwan-dev/soccer-schedule-manager/api/security"

	"github.com/gin-gonic/gin"
)

// Login exchanges the shared operator password for an admin session token.
// The credential check happens here and only here; the ledger and balancer
// never see credentials.
func (server *Server) Login(c *gin.Context) {
	errList := map[string]string{}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errList["Invalid_body"] = "Invalid request body"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	if req.Password == "" {
		errList["Required_password"] = "Required Password"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	if server.adminCredentialHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin login is not configured"})
		return
	}

	if err := security.VerifyPassword(server.adminCredentialHash, req.Password); err != nil {
		errList["Incorrect_password"] = "Incorrect Password"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	token, err := auth.CreateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": gin.H{"token": token},
	})
}
