package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/davidbures/learnset-api/models"
)

// POST /usersets
//
// No duplicate check: favoriting the same set twice creates two links.
func (db *DBHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User string `json:"user"`
		Set  string `json:"set"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	userSet := models.UserSet{
		UserID: req.User,
		SetID:  req.Set,
	}

	if err := db.Create(&userSet).Error; err != nil {
		log.Printf("AddFavorite: Failed to create favorite for user %s: %v", req.User, err)
		http.Error(w, "Failed to create favorite", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, userSet)
}

// GET /usersets?user=
func (db *DBHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")

	var links []models.UserSet
	result := db.Preload("Set").
		Where("user_id = ?", user).
		Find(&links)

	if result.Error != nil {
		log.Printf("GetFavorites: Failed to list favorites for user %s: %v", user, result.Error)
		http.Error(w, "Failed to list favorites", http.StatusInternalServerError)
		return
	}

	type FavoriteResponse struct {
		ID  string     `json:"id"`
		Set models.Set `json:"set"`
	}

	favorites := make([]FavoriteResponse, len(links))
	for i, link := range links {
		favorites[i] = FavoriteResponse{ID: link.ID, Set: link.Set}
	}

	writeJSON(w, http.StatusOK, favorites)
}
