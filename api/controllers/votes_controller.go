package controllers

import (
	"errors"
	"net/http"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/models"
	"github.com/jaekwan-dev/soccer-schedule-manager/api/utils/formaterror"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CastVote records an attendance vote. Votes are last-write-wins per name:
// voting again under the same name replaces the previous entry. The whole
// read-modify-write is serialized per match.
func (server *Server) CastVote(c *gin.Context) {
	errList := map[string]string{}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errList["Invalid_body"] = "Invalid request body"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	matchID := c.Param("id")
	mu := lockMatch(matchID)
	defer mu.Unlock()

	match := models.Match{}
	found, err := match.FindMatchByID(server.DB, matchID)
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

	if err := found.CastVote(req.Name, req.Vote, req.Type, req.Inviter, server.now()); err != nil {
		status, messages := voteErrorResponse(err)
		c.JSON(status, gin.H{
			"status": status,
			"error":  messages,
		})
		return
	}

	if _, err := found.SaveVoters(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": server.toMatchResponse(found),
	})
	invalidateMatchListCache()
}

// RemoveVote force-deletes a voter's entry. Operators can use it even after
// the deadline has passed.
func (server *Server) RemoveVote(c *gin.Context) {
	errList := map[string]string{}

	var req RemoveVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VoterName == "" {
		errList["Required_voter_name"] = "Required Voter Name"
		c.JSON(http.StatusBadRequest, gin.H{
			"status": http.StatusBadRequest,
			"error":  errList,
		})
		return
	}

	matchID := c.Param("id")
	mu := lockMatch(matchID)
	defer mu.Unlock()

	match := models.Match{}
	found, err := match.FindMatchByID(server.DB, matchID)
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

	if err := found.RemoveVote(req.VoterName); err != nil {
		errList["No_voter"] = "No voter found"
		c.JSON(http.StatusNotFound, gin.H{
			"status": http.StatusNotFound,
			"error":  errList,
		})
		return
	}

	if _, err := found.SaveVoters(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": server.toMatchResponse(found),
	})
	invalidateMatchListCache()
}

func voteErrorResponse(err error) (int, map[string]string) {
	switch {
	case errors.Is(err, models.ErrNameRequired):
		return http.StatusUnprocessableEntity, map[string]string{"Required_name": "Required Name"}
	case errors.Is(err, models.ErrInvalidVoteKind):
		return http.StatusUnprocessableEntity, map[string]string{"Invalid_vote": "Vote must be attend or absent"}
	case errors.Is(err, models.ErrInvalidParticipant):
		return http.StatusUnprocessableEntity, map[string]string{"Invalid_type": "Type must be member or guest"}
	case errors.Is(err, models.ErrInviterRequired):
		return http.StatusUnprocessableEntity, map[string]string{"Required_inviter": "Guests need an inviter"}
	case errors.Is(err, models.ErrInvalidDeadline):
		return http.StatusUnprocessableEntity, map[string]string{"Invalid_deadline": "Invalid vote deadline"}
	case errors.Is(err, models.ErrDeadlinePassed):
		return http.StatusBadRequest, map[string]string{"Deadline_passed": "Voting has closed"}
	case errors.Is(err, models.ErrCapacityReached):
		return http.StatusBadRequest, map[string]string{"Capacity_reached": "Attendance is full"}
	}
	return http.StatusInternalServerError, map[string]string{"Vote_failed": "Unable to record vote"}
}
