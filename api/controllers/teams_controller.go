package controllers

import (
	"errors"
	"net/http"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/models"
	"github.com/jaekwan-dev/soccer-schedule-manager/api/teams"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GenerateTeams splits a match's confirmed attendees into balanced teams
// and renders the shareable report.
func (server *Server) GenerateTeams(c *gin.Context) {
	errList := map[string]string{}

	var req GenerateTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errList["Invalid_body"] = "Invalid request body"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	strategy := teams.StrategyLevel
	switch req.Strategy {
	case "", string(teams.StrategyLevel):
	case string(teams.StrategyBanded):
		strategy = teams.StrategyBanded
	default:
		errList["Invalid_strategy"] = "Strategy must be level or banded"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	match := models.Match{}
	found, err := match.FindMatchByID(server.DB, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			errList["No_match"] = "No match found"
			c.JSON(http.StatusNotFound, gin.H{
				"status": http.StatusNotFound,
				"error":  errList,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve match"})
		return
	}

	member := models.Member{}
	roster, err := member.FindAllMembers(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to load member roster"})
		return
	}

	generated, err := teams.Generate(found, roster, req.TeamCount, strategy)
	if err != nil {
		switch {
		case errors.Is(err, teams.ErrNoAttendees):
			errList["No_attendees"] = "No attendees to assign"
		case errors.Is(err, teams.ErrInvalidTeamCount):
			errList["Invalid_team_count"] = "Team count must be at least 2 and at most the attendee count"
		default:
			errList["Generate_failed"] = "Unable to generate teams"
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  errList,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": TeamReportResponse{
			TeamCount: req.TeamCount,
			Strategy:  string(strategy),
			Teams:     toTeamResponses(generated),
			Report:    teams.Render(found, generated),
		},
	})
}
