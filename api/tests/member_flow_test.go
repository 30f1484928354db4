package tests

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func createTestMember(t *testing.T, r *gin.Engine, name string, level int) map[string]interface{} {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/members", map[string]interface{}{
		"name": name, "level": level,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to create member: %d %s", w.Code, w.Body.String())
	}
	return decodeResponse(t, w)["response"].(map[string]interface{})
}

func TestCreateAndListMembers(t *testing.T) {
	_, r := newTestServer(t)

	createTestMember(t, r, "김주장", 11)
	createTestMember(t, r, "박신입", 2)

	w := doJSON(t, r, http.MethodGet, "/api/v1/members", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	members := decodeResponse(t, w)["response"].([]interface{})
	assert.Len(t, members, 2)

	first := members[0].(map[string]interface{})
	assert.Equal(t, "김주장", first["name"])
	assert.Equal(t, float64(11), first["level"])
}

func TestCreateMemberLevelBounds(t *testing.T) {
	_, r := newTestServer(t)

	for _, level := range []int{0, 14, -3} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/members", map[string]interface{}{
			"name": "김주장", "level": level,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		errBody := decodeResponse(t, w)["error"].(map[string]interface{})
		assert.Contains(t, errBody, "Invalid_level")
	}
}

func TestCreateMemberDuplicateName(t *testing.T) {
	_, r := newTestServer(t)

	createTestMember(t, r, "김주장", 11)
	w := doJSON(t, r, http.MethodPost, "/api/v1/members", map[string]interface{}{
		"name": "김주장", "level": 5,
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	errBody := decodeResponse(t, w)["error"].(map[string]interface{})
	assert.Contains(t, errBody, "Taken_name")
}

func TestUpdateMember(t *testing.T) {
	_, r := newTestServer(t)

	id := createTestMember(t, r, "김주장", 11)["id"].(string)

	w := doJSON(t, r, http.MethodPut, "/api/v1/members/"+id, map[string]interface{}{
		"name": "김주장", "level": 12,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	updated := decodeResponse(t, w)["response"].(map[string]interface{})
	assert.Equal(t, float64(12), updated["level"])

	w = doJSON(t, r, http.MethodPut, "/api/v1/members/no-such-member", map[string]interface{}{
		"name": "아무개", "level": 3,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMember(t *testing.T) {
	_, r := newTestServer(t)

	id := createTestMember(t, r, "김주장", 11)["id"].(string)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/members/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/members", nil)
	members := decodeResponse(t, w)["response"].([]interface{})
	assert.Len(t, members, 0)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/members/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
