package controllers

import (
	"errors"
	"net/http"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/models"
	"github.com/jaekwan-dev/soccer-schedule-manager/api/utils/formaterror"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (server *Server) GetMembers(c *gin.Context) {
	member := models.Member{}
	members, err := member.FindAllMembers(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": members,
	})
}

func (server *Server) CreateMember(c *gin.Context) {
	errList := map[string]string{}

	var member models.Member
	if err := c.ShouldBindJSON(&member); err != nil {
		errList["Invalid_body"] = "Invalid request body"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	member.Prepare()
	errorMessages := member.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	created, err := member.SaveMember(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": created,
	})
}

func (server *Server) UpdateMember(c *gin.Context) {
	errList := map[string]string{}

	existing := models.Member{}
	if _, err := existing.FindMemberByID(server.DB, c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errList["No_member"] = "No member found"
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  errList,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve member"})
		return
	}

	var update models.Member
	if err := c.ShouldBindJSON(&update); err != nil {
		errList["Invalid_body"] = "Invalid request body"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	update.ID = existing.ID
	update.Prepare()
	errorMessages := update.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	updated, err := update.UpdateMember(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": updated,
	})
}

func (server *Server) DeleteMember(c *gin.Context) {
	errList := map[string]string{}

	member := models.Member{}
	found, err := member.FindMemberByID(server.DB, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errList["No_member"] = "No member found"
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  errList,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve member"})
		return
	}

	if _, err := found.DeleteMember(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "Member deleted",
	})
}
