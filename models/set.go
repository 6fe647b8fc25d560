package models

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// Set represents a collection of flashcards
type Set struct {
	ID          string `gorm:"primaryKey;size:21" json:"id"`
	Title       string `gorm:"not null;size:200" json:"title"`
	Description string `gorm:"size:2000" json:"description"`
	Private     bool   `gorm:"not null;default:false" json:"private"`
	Creator     string `gorm:"not null;size:100;index" json:"creator"`

	// Cards counts the live Card rows referencing this set. Only the card
	// creation path may write it, and only through an atomic delta update.
	Cards int `gorm:"not null;default:0" json:"cards"`
}

func (s *Set) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		s.ID = id
	}
	return nil
}
