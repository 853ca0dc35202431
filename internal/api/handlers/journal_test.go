package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/dom/garden-manager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalHandler_CreateAndCrossUserAccess(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, ownerToken := testutil.NewUserBuilder().WithEmail("owner@x.com").BuildAndAuthenticate(t, ts)
	_, otherToken := testutil.NewUserBuilder().WithEmail("other@x.com").BuildAndAuthenticate(t, ts)

	garden := testutil.NewGardenBuilder(owner.ID).Build(t, ts.DB.DB)

	// Owner creates an entry
	resp := ts.DoJSON(t, http.MethodPost, "/journal", ownerToken, map[string]interface{}{
		"gardenId": garden.ID.String(),
		"date":     time.Now().Format(time.RFC3339),
		"notes":    "transplanted the tomato seedlings",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var entry struct {
		ID string `json:"id"`
	}
	testutil.AssertJSONResponse(t, resp, &entry)
	require.NotEmpty(t, entry.ID)

	t.Run("other user cannot fetch the entry", func(t *testing.T) {
		resp := ts.DoJSON(t, http.MethodGet, "/journal/"+entry.ID, otherToken, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("other user cannot update the entry", func(t *testing.T) {
		resp := ts.DoJSON(t, http.MethodPut, "/journal/"+entry.ID, otherToken, map[string]string{
			"notes": "hijacked",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("other user cannot delete the entry", func(t *testing.T) {
		resp := ts.DoJSON(t, http.MethodDelete, "/journal/"+entry.ID, otherToken, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("other user cannot create under the garden", func(t *testing.T) {
		resp := ts.DoJSON(t, http.MethodPost, "/journal", otherToken, map[string]interface{}{
			"gardenId": garden.ID.String(),
			"date":     time.Now().Format(time.RFC3339),
			"notes":    "sneaky entry",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("other user cannot list the garden journal", func(t *testing.T) {
		resp := ts.DoJSON(t, http.MethodGet, "/journal/garden/"+garden.ID.String(), otherToken, nil)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("owner lists and updates", func(t *testing.T) {
		resp := ts.DoJSON(t, http.MethodGet, "/journal/garden/"+garden.ID.String(), ownerToken, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		putResp := ts.DoJSON(t, http.MethodPut, "/journal/"+entry.ID, ownerToken, map[string]string{
			"notes": "transplanted and watered in",
		})
		defer putResp.Body.Close()
		require.Equal(t, http.StatusOK, putResp.StatusCode)

		var updated struct {
			Notes string `json:"notes"`
		}
		testutil.AssertJSONResponse(t, putResp, &updated)
		assert.Equal(t, "transplanted and watered in", updated.Notes)
	})

	t.Run("owner deletes", func(t *testing.T) {
		resp := ts.DoJSON(t, http.MethodDelete, "/journal/"+entry.ID, ownerToken, nil)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		getResp := ts.DoJSON(t, http.MethodGet, "/journal/"+entry.ID, ownerToken, nil)
		defer getResp.Body.Close()
		assert.Equal(t, http.StatusNotFound, getResp.StatusCode)
	})
}
