package tests

import (
	"net/http"
	"testing"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateAndGetMatch(t *testing.T) {
	_, r := newTestServer(t)

	created := createTestMatch(t, r, openMatchPayload())
	id := created["id"].(string)
	assert.NotEmpty(t, id)
	assert.Equal(t, "2025-06-07", created["date"])
	assert.Equal(t, "반포종합운동장", created["venue"])
	assert.Equal(t, float64(20), created["max_attendees"])
	assert.Equal(t, true, created["voting_open"])

	w := doJSON(t, r, http.MethodGet, "/api/v1/matches/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	fetched := decodeResponse(t, w)["response"].(map[string]interface{})
	assert.Equal(t, id, fetched["id"])

	tally := fetched["attendance_votes"].(map[string]interface{})
	assert.Equal(t, float64(0), tally["attend"])
	assert.Equal(t, float64(0), tally["absent"])
}

func TestCreateMatchValidation(t *testing.T) {
	_, r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/matches", map[string]interface{}{
		"date": "2025-06-07",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errBody := decodeResponse(t, w)["error"].(map[string]interface{})
	assert.Contains(t, errBody, "Required_time")
	assert.Contains(t, errBody, "Required_venue")
	assert.Contains(t, errBody, "Required_vote_deadline")
}

func TestCreateMatchRejectsBadDeadline(t *testing.T) {
	_, r := newTestServer(t)

	payload := openMatchPayload()
	payload["vote_deadline"] = "06/06/2025"
	w := doJSON(t, r, http.MethodPost, "/api/v1/matches", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errBody := decodeResponse(t, w)["error"].(map[string]interface{})
	assert.Contains(t, errBody, "Invalid_vote_deadline")
}

func TestGetMissingMatch(t *testing.T) {
	_, r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/matches/not-a-match", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateMatchKeepsVoters(t *testing.T) {
	_, r := newTestServer(t)

	created := createTestMatch(t, r, openMatchPayload())
	id := created["id"].(string)

	w := doJSON(t, r, http.MethodPost, "/api/v1/matches/"+id+"/vote", map[string]interface{}{
		"name": "김주장", "vote": "attend", "type": "member",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	update := openMatchPayload()
	update["venue"] = "잠실보조경기장"
	update["time"] = "08:00"
	w = doJSON(t, r, http.MethodPut, "/api/v1/matches/"+id, update)
	assert.Equal(t, http.StatusOK, w.Code)

	updated := decodeResponse(t, w)["response"].(map[string]interface{})
	assert.Equal(t, "잠실보조경기장", updated["venue"])
	assert.Equal(t, "08:00", updated["time"])

	voters := updated["voters"].([]interface{})
	assert.Len(t, voters, 1)
	assert.Equal(t, "김주장", voters[0].(map[string]interface{})["name"])
}

func TestDeleteMatchRemovesComments(t *testing.T) {
	server, r := newTestServer(t)

	created := createTestMatch(t, r, openMatchPayload())
	id := created["id"].(string)

	w := doJSON(t, r, http.MethodPost, "/api/v1/matches/"+id+"/comments", map[string]interface{}{
		"author_name": "김주장", "content": "이번 주 우천 시 취소입니다",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/matches/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/matches/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	comment := models.Comment{}
	comments, err := comment.GetComments(server.DB, id)
	assert.NoError(t, err)
	assert.Len(t, *comments, 0)
}

func TestGetMatchesPartitioned(t *testing.T) {
	_, r := newTestServer(t)

	open := openMatchPayload()
	openID := createTestMatch(t, r, open)["id"].(string)

	closed := openMatchPayload()
	closed["date"] = "2025-06-01"
	closed["vote_deadline"] = "2025-05-31"
	closedID := createTestMatch(t, r, closed)["id"].(string)

	w := doJSON(t, r, http.MethodGet, "/api/v1/matches/partitioned", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeResponse(t, w)["response"].(map[string]interface{})
	ongoing := body["ongoing"].([]interface{})
	ended := body["closed"].([]interface{})
	assert.Len(t, ongoing, 1)
	assert.Len(t, ended, 1)
	assert.Equal(t, openID, ongoing[0].(map[string]interface{})["id"])
	assert.Equal(t, closedID, ended[0].(map[string]interface{})["id"])
}

func TestGetVenueSuggestions(t *testing.T) {
	_, r := newTestServer(t)

	first := openMatchPayload()
	createTestMatch(t, r, first)

	second := openMatchPayload()
	second["date"] = "2025-06-14"
	second["venue"] = "잠실보조경기장"
	createTestMatch(t, r, second)

	third := openMatchPayload()
	third["date"] = "2025-06-21"
	createTestMatch(t, r, third)

	w := doJSON(t, r, http.MethodGet, "/api/v1/matches/venues", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	venues := decodeResponse(t, w)["response"].([]interface{})
	assert.Len(t, venues, 2)
	assert.Contains(t, venues, "반포종합운동장")
	assert.Contains(t, venues, "잠실보조경기장")
}
