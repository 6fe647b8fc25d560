package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/davidbures/learnset-api/models"
)

// POST /learnings
//
// The score is derived once here and stored with the record. Counts are
// taken as given; nothing verifies that correct + wrong == total, and a
// zero total produces a record with an undefined (null) score rather than
// an error.
func (db *DBHandler) CreateLearning(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User         string `json:"user"`
		Set          string `json:"set"`
		CardsTotal   int    `json:"cards_total"`
		CardsCorrect int    `json:"cards_correct"`
		CardsWrong   int    `json:"cards_wrong"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	learning := models.Learning{
		UserID:       req.User,
		SetID:        req.Set,
		CardsTotal:   req.CardsTotal,
		CardsCorrect: req.CardsCorrect,
		CardsWrong:   req.CardsWrong,
		Score:        models.ComputeScore(req.CardsCorrect, req.CardsTotal),
	}

	if err := db.Create(&learning).Error; err != nil {
		log.Printf("CreateLearning: Failed to create learning for user %s: %v", req.User, err)
		http.Error(w, "Failed to create learning", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, learning)
}

// GET /learnings?user=
func (db *DBHandler) GetLearningsForUser(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")

	var learnings []models.Learning
	result := db.Preload("Set").
		Where("user_id = ?", user).
		Find(&learnings)

	if result.Error != nil {
		log.Printf("GetLearningsForUser: Failed to list learnings for user %s: %v", user, result.Error)
		http.Error(w, "Failed to list learnings", http.StatusInternalServerError)
		return
	}

	type LearningResponse struct {
		ID           string       `json:"id"`
		User         string       `json:"user"`
		Set          models.Set   `json:"set"`
		CardsTotal   int          `json:"cards_total"`
		CardsCorrect int          `json:"cards_correct"`
		CardsWrong   int          `json:"cards_wrong"`
		Score        models.Score `json:"score"`
	}

	records := make([]LearningResponse, len(learnings))
	for i, l := range learnings {
		records[i] = LearningResponse{
			ID:           l.ID,
			User:         l.UserID,
			Set:          l.Set,
			CardsTotal:   l.CardsTotal,
			CardsCorrect: l.CardsCorrect,
			CardsWrong:   l.CardsWrong,
			Score:        l.Score,
		}
	}

	writeJSON(w, http.StatusOK, records)
}
