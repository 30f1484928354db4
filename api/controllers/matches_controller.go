package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/cache"
	"github.com/jaekwan-dev/soccer-schedule-manager/api/models"
	"github.com/jaekwan-dev/soccer-schedule-manager/api/utils/formaterror"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const matchListCacheTTL = 60 * time.Second

// GetMatches lists every match ordered by fixture date. The listing is the
// hottest read, so it is served from the cache when one is available.
func (server *Server) GetMatches(c *gin.Context) {
	ctx := context.Background()

	if cached, err := cache.Get(ctx, matchListCacheKey); err == nil && cached != "" {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	match := models.Match{}
	matches, err := match.FindAllMatches(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	body := gin.H{
		"status":   http.StatusOK,
		"response": server.toMatchResponses(matches),
	}
	if encoded, err := json.Marshal(body); err == nil {
		_ = cache.Set(ctx, matchListCacheKey, encoded, matchListCacheTTL)
	}
	c.JSON(http.StatusOK, body)
}

// GetMatchesPartitioned splits the schedule into ongoing and closed lists
// by the vote deadline. The partition is derived, never stored.
func (server *Server) GetMatchesPartitioned(c *gin.Context) {
	match := models.Match{}
	matches, err := match.FindAllMatches(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	now := server.now()
	partitioned := PartitionedMatchesResponse{
		Ongoing: []MatchResponse{},
		Closed:  []MatchResponse{},
	}
	for i := range matches {
		resp := server.toMatchResponse(&matches[i])
		if matches[i].IsVotingOpen(now) {
			partitioned.Ongoing = append(partitioned.Ongoing, resp)
		} else {
			partitioned.Closed = append(partitioned.Closed, resp)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": partitioned,
	})
}

func (server *Server) GetMatch(c *gin.Context) {
	errList := map[string]string{}

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

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": server.toMatchResponse(found),
	})
}

func (server *Server) CreateMatch(c *gin.Context) {
	errList := map[string]string{}

	var match models.Match
	if err := c.ShouldBindJSON(&match); err != nil {
		errList["Invalid_body"] = "Invalid request body"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	match.Prepare()
	errorMessages := match.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	created, err := match.SaveMatch(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":   http.StatusCreated,
		"response": server.toMatchResponse(created),
	})
	invalidateMatchListCache()
}

func (server *Server) UpdateMatch(c *gin.Context) {
	errList := map[string]string{}

	existing := models.Match{}
	if _, err := existing.FindMatchByID(server.DB, c.Param("id")); err != nil {
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

	var update models.Match
	if err := c.ShouldBindJSON(&update); err != nil {
		errList["Invalid_body"] = "Invalid request body"
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errList,
		})
		return
	}

	update.ID = existing.ID
	update.Voters = existing.Voters
	update.Prepare()
	errorMessages := update.Validate()
	if len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	if _, err := update.UpdateMatch(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	updated := models.Match{}
	found, err := updated.FindMatchByID(server.DB, existing.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to retrieve match"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": server.toMatchResponse(found),
	})
	invalidateMatchListCache()
}

func (server *Server) DeleteMatch(c *gin.Context) {
	errList := map[string]string{}

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

	if _, err := found.DeleteMatch(server.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	comment := models.Comment{}
	if _, err := comment.DeleteMatchComments(server.DB, found.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": "Match deleted",
	})
	invalidateMatchListCache()
}

// GetVenueSuggestions lists distinct past venues for the match form.
func (server *Server) GetVenueSuggestions(c *gin.Context) {
	match := models.Match{}
	venues, err := match.FindVenues(server.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": http.StatusInternalServerError,
			"error":  formaterror.FormatError(err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": venues,
	})
}
