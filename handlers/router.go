package handlers

import (
	"net/http"
)

// Router wires every endpoint onto a fresh mux. Kept out of main so the
// tests exercise the same route table the server runs.
func (db *DBHandler) Router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "learnset api"})
	})

	// Sets
	mux.HandleFunc("GET /sets", db.GetPublicSets)
	mux.HandleFunc("POST /sets", db.CreateSet)
	mux.HandleFunc("GET /sets/{id}", db.GetSetByID)
	mux.HandleFunc("DELETE /sets/{id}", db.DeleteSetByID)

	// Favorites
	mux.HandleFunc("POST /usersets", db.AddFavorite)
	mux.HandleFunc("GET /usersets", db.GetFavorites)

	// Cards. The literal /cards/learn pattern wins over /cards/{setid}.
	mux.HandleFunc("POST /cards", db.CreateCard)
	mux.HandleFunc("GET /cards/learn", db.LearnCards)
	mux.HandleFunc("GET /cards/{setid}", db.GetCardsForSet)

	// Learnings
	mux.HandleFunc("POST /learnings", db.CreateLearning)
	mux.HandleFunc("GET /learnings", db.GetLearningsForUser)

	return mux
}
