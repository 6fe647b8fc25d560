package handlers

import (
	"net/http"
	"testing"

	"github.com/davidbures/learnset-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavorite(t *testing.T) {
	db := setupTestDB(t)
	mux := db.Router()

	setID := createTestSet(t, mux, "Bookmarked", false)

	rr := doRequest(t, mux, http.MethodPost, "/usersets", map[string]any{
		"user": "rec_dave",
		"set":  setID,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	link := decodeBody[models.UserSet](t, rr)

	assert.NotEmpty(t, link.ID)
	assert.Equal(t, "rec_dave", link.UserID)
	assert.Equal(t, setID, link.SetID)
}

func TestAddFavoritePermitsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	mux := db.Router()

	setID := createTestSet(t, mux, "Twice Loved", false)

	ids := make(map[string]bool)
	for i := 0; i < 2; i++ {
		rr := doRequest(t, mux, http.MethodPost, "/usersets", map[string]any{
			"user": "rec_dave",
			"set":  setID,
		})
		require.Equal(t, http.StatusCreated, rr.Code)
		ids[decodeBody[models.UserSet](t, rr).ID] = true
	}
	require.Len(t, ids, 2, "duplicate favorites create distinct links")

	rr := doRequest(t, mux, http.MethodGet, "/usersets?user=rec_dave", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	favorites := decodeBody[[]map[string]any](t, rr)
	assert.Len(t, favorites, 2)
}

func TestGetFavoritesExpandsSet(t *testing.T) {
	db := setupTestDB(t)
	mux := db.Router()

	setID := createTestSet(t, mux, "Expanded", false)
	createTestSet(t, mux, "Unfavorited", false)

	rr := doRequest(t, mux, http.MethodPost, "/usersets", map[string]any{
		"user": "rec_erin",
		"set":  setID,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	linkID := decodeBody[models.UserSet](t, rr).ID

	rr = doRequest(t, mux, http.MethodGet, "/usersets?user=rec_erin", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	favorites := decodeBody[[]struct {
		ID  string     `json:"id"`
		Set models.Set `json:"set"`
	}](t, rr)

	require.Len(t, favorites, 1)
	assert.Equal(t, linkID, favorites[0].ID)
	assert.Equal(t, setID, favorites[0].Set.ID)
	assert.Equal(t, "Expanded", favorites[0].Set.Title)
	assert.Equal(t, "rec_user1", favorites[0].Set.Creator)
}

func TestGetFavoritesUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	mux := db.Router()

	rr := doRequest(t, mux, http.MethodGet, "/usersets?user=rec_nobody", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}
