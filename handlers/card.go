package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"strconv"

	"github.com/davidbures/learnset-api/models"
	"gorm.io/gorm"
)

// POST /cards
//
// Two-step write: the card row is created first, then the owning set's
// counter is bumped with an atomic delta update. The steps are not in a
// transaction; if the increment fails after the card was created, the
// counter is stale until the caller retries, and the request reports
// failure. A read-modify-write of the counter would lose updates under
// concurrent creates, so the increment always goes through gorm.Expr.
func (db *DBHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Set      string `json:"set"`
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var set models.Set
	if err := db.First(&set, "id = ?", req.Set).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("CreateCard: Failed to read set %s: %v", req.Set, err)
			http.Error(w, "Failed to read set", http.StatusInternalServerError)
			return
		}
		http.Error(w, "Set not found", http.StatusNotFound)
		return
	}

	card := models.Card{
		SetID:    req.Set,
		Question: req.Question,
		Answer:   req.Answer,
	}

	if err := db.Create(&card).Error; err != nil {
		log.Printf("CreateCard: Failed to create card in set %s: %v", req.Set, err)
		http.Error(w, "Failed to create card", http.StatusInternalServerError)
		return
	}

	increment := db.Model(&models.Set{}).
		Where("id = ?", card.SetID).
		UpdateColumn("cards", gorm.Expr("cards + ?", 1))
	if increment.Error != nil {
		log.Printf("CreateCard: Card %s created but count update for set %s failed: %v", card.ID, card.SetID, increment.Error)
		http.Error(w, "Failed to update card count", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, card)
}

// GET /cards/{setid}
func (db *DBHandler) GetCardsForSet(w http.ResponseWriter, r *http.Request) {
	setID := r.PathValue("setid")

	var cards []models.Card
	if err := db.Where("set_id = ?", setID).Find(&cards).Error; err != nil {
		log.Printf("GetCardsForSet: Failed to list cards for set %s: %v", setID, err)
		http.Error(w, "Failed to list cards", http.StatusInternalServerError)
		return
	}

	if len(cards) == 0 {
		cards = []models.Card{}
	}

	writeJSON(w, http.StatusOK, cards)
}

// GET /cards/learn?setid=&limit=
//
// Draws up to limit cards from the set, uniformly without replacement:
// every card is equally likely and none appears twice. When limit exceeds
// the set size, all cards come back.
func (db *DBHandler) LearnCards(w http.ResponseWriter, r *http.Request) {
	setID := r.URL.Query().Get("setid")
	limitStr := r.URL.Query().Get("limit")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
		return
	}

	type CardFace struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}

	var cards []CardFace
	result := db.Model(&models.Card{}).
		Select("question", "answer").
		Where("set_id = ?", setID).
		Find(&cards)

	if result.Error != nil {
		log.Printf("LearnCards: Failed to list cards for set %s: %v", setID, result.Error)
		http.Error(w, "Failed to list cards", http.StatusInternalServerError)
		return
	}

	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	if limit < len(cards) {
		cards = cards[:limit]
	}

	if len(cards) == 0 {
		cards = []CardFace{}
	}

	writeJSON(w, http.StatusOK, cards)
}
