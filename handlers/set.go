package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/davidbures/learnset-api/models"
	"gorm.io/gorm"
)

// GET /sets
func (db *DBHandler) GetPublicSets(w http.ResponseWriter, r *http.Request) {
	type PublicSet struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Cards       int    `json:"cards"`
	}

	var sets []PublicSet
	result := db.Model(&models.Set{}).
		Select("id", "title", "description", "cards").
		Where("private = ?", false).
		Find(&sets)

	if result.Error != nil {
		log.Printf("GetPublicSets: Failed to list sets: %v", result.Error)
		http.Error(w, "Failed to list sets", http.StatusInternalServerError)
		return
	}

	if len(sets) == 0 {
		sets = []PublicSet{}
	}

	writeJSON(w, http.StatusOK, sets)
}

// POST /sets
func (db *DBHandler) CreateSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Private     bool   `json:"private"`
		Creator     string `json:"creator"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	set := models.Set{
		Title:       req.Title,
		Description: req.Description,
		Private:     req.Private,
		Creator:     req.Creator,
	}

	if err := db.Create(&set).Error; err != nil {
		log.Printf("CreateSet: Failed to create set: %v", err)
		http.Error(w, "Failed to create set", http.StatusInternalServerError)
		return
	}

	log.Printf("CreateSet: Created set %s for creator %s", set.ID, set.Creator)
	writeJSON(w, http.StatusCreated, set)
}

// GET /sets/{id}
func (db *DBHandler) GetSetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var set models.Set
	if err := db.First(&set, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("GetSetByID: Failed to read set %s: %v", id, err)
			http.Error(w, "Failed to read set", http.StatusInternalServerError)
			return
		}
		http.Error(w, fmt.Sprintf("Set with ID %s not found", id), http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, set)
}

// DELETE /sets/{id}
//
// Favorite links referencing the set are removed first, then the set itself.
// The order matters: a crash between the two steps must not leave links
// pointing at a deleted set. Cards and learning records are not cascaded;
// they keep their set reference as a dangling id.
func (db *DBHandler) DeleteSetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var links []models.UserSet
	if err := db.Where("set_id = ?", id).Find(&links).Error; err != nil {
		log.Printf("DeleteSetByID: Failed to list favorite links for set %s: %v", id, err)
		http.Error(w, "Failed to delete set", http.StatusInternalServerError)
		return
	}

	if len(links) > 0 {
		linkIDs := make([]string, len(links))
		for i, link := range links {
			linkIDs[i] = link.ID
		}
		if err := db.Delete(&models.UserSet{}, "id IN ?", linkIDs).Error; err != nil {
			log.Printf("DeleteSetByID: Failed to delete %d favorite links for set %s: %v", len(linkIDs), id, err)
			http.Error(w, "Failed to delete set", http.StatusInternalServerError)
			return
		}
	}

	if err := db.Delete(&models.Set{}, "id = ?", id).Error; err != nil {
		log.Printf("DeleteSetByID: Favorite links removed but set %s delete failed: %v", id, err)
		http.Error(w, "Failed to delete set", http.StatusInternalServerError)
		return
	}

	log.Printf("DeleteSetByID: Deleted set %s and %d favorite links", id, len(links))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
