package models

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// Learning is the immutable result of one study session against a set.
// Records are append-only; nothing updates them after creation. The counts
// are stored as given, with no check that correct + wrong == total.
type Learning struct {
	ID           string `gorm:"primaryKey;size:21" json:"id"`
	UserID       string `gorm:"column:user_id;not null;size:100;index" json:"user"`
	SetID        string `gorm:"column:set_id;not null;size:21;index" json:"set"`
	CardsTotal   int    `gorm:"not null" json:"cards_total"`
	CardsCorrect int    `gorm:"not null" json:"cards_correct"`
	CardsWrong   int    `gorm:"not null" json:"cards_wrong"`

	// Score is computed once at creation and never recomputed. A session
	// with cards_total == 0 has no defined score (see Score).
	Score Score `gorm:"type:real" json:"score"`

	Set Set `gorm:"foreignKey:SetID" json:"-"`
}

func (l *Learning) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		l.ID = id
	}
	return nil
}

// ComputeScore derives the percentage score for a session. Division is
// floating-point on purpose: a zero total yields NaN (or Inf when correct
// is nonzero), which marks the record as degenerate rather than scoring 0.
func ComputeScore(correct, total int) Score {
	return Score(float64(correct) / float64(total) * 100)
}
