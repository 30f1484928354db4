package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jaekwan-dev/soccer-schedule-manager/api/controllers"
	"github.com/jaekwan-dev/soccer-schedule-manager/api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testNow is pinned before the deadlines used by the fixtures.
var testNow = time.Date(2025, 6, 5, 10, 0, 0, 0, time.Local)

// newTestServer builds a server on an in-memory database with a fixed
// clock. Admin routes are registered without the token middleware; the
// middleware itself is covered by the login flow test.
func newTestServer(t *testing.T) (*controllers.Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Match{}, &models.Member{}, &models.Comment{}); err != nil {
		t.Fatalf("Failed to migrate tables: %v", err)
	}

	server := &controllers.Server{
		DB:  db,
		Now: func() time.Time { return testNow },
	}

	r := gin.Default()
	v1 := r.Group("/api/v1")
	{
		v1.POST("/login", server.Login)

		v1.GET("/matches", server.GetMatches)
		v1.GET("/matches/partitioned", server.GetMatchesPartitioned)
		v1.GET("/matches/venues", server.GetVenueSuggestions)
		v1.GET("/matches/:id", server.GetMatch)
		v1.POST("/matches", server.CreateMatch)
		v1.PUT("/matches/:id", server.UpdateMatch)
		v1.DELETE("/matches/:id", server.DeleteMatch)

		v1.POST("/matches/:id/vote", server.CastVote)
		v1.DELETE("/matches/:id/vote", server.RemoveVote)

		v1.POST("/matches/:id/teams", server.GenerateTeams)

		v1.GET("/members", server.GetMembers)
		v1.POST("/members", server.CreateMember)
		v1.PUT("/members/:id", server.UpdateMember)
		v1.DELETE("/members/:id", server.DeleteMember)

		v1.GET("/matches/:id/comments", server.GetComments)
		v1.POST("/matches/:id/comments", server.CreateComment)
		v1.DELETE("/comments/:id", server.DeleteComment)
	}
	return server, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Error creating request body: %v", err)
		}
		body = bytes.NewBuffer(encoded)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	if err != nil {
		t.Fatalf("Error creating HTTP request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Error unmarshalling response body: %v", err)
	}
	return body
}

func createTestMatch(t *testing.T, r *gin.Engine, payload map[string]interface{}) map[string]interface{} {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/matches", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to create match: %d %s", w.Code, w.Body.String())
	}
	return decodeResponse(t, w)["response"].(map[string]interface{})
}

func openMatchPayload() map[string]interface{} {
	return map[string]interface{}{
		"date":          "2025-06-07",
		"time":          "07:00",
		"venue":         "반포종합운동장",
		"vote_deadline": "2025-06-06",
		"max_attendees": 20,
	}
}
