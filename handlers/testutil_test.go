package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/davidbures/learnset-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a private in-memory sqlite database, migrated with the
// full schema. Named per test so parallel tests never share state.
func setupTestDB(t *testing.T) *DBHandler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "failed to open sqlite database")

	err = gdb.AutoMigrate(&models.Set{}, &models.Card{}, &models.UserSet{}, &models.Learning{})
	require.NoError(t, err, "failed to migrate schema")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, sqlDB.Close())
	})

	return &DBHandler{DB: gdb}
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), "response body: %s", rr.Body.String())
	return out
}

// createTestSet inserts a set through the API and returns its id.
func createTestSet(t *testing.T, mux http.Handler, title string, private bool) string {
	t.Helper()

	rr := doRequest(t, mux, http.MethodPost, "/sets", map[string]any{
		"title":       title,
		"description": "test set",
		"private":     private,
		"creator":     "rec_user1",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	set := decodeBody[models.Set](t, rr)
	require.NotEmpty(t, set.ID)
	return set.ID
}

func createTestCard(t *testing.T, mux http.Handler, setID, question, answer string) models.Card {
	t.Helper()

	rr := doRequest(t, mux, http.MethodPost, "/cards", map[string]any{
		"set":      setID,
		"question": question,
		"answer":   answer,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	return decodeBody[models.Card](t, rr)
}
