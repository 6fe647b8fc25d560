package models

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// Card is a single question/answer pair. A card belongs to exactly one set
// for its lifetime; there is no re-parenting.
type Card struct {
	ID       string `gorm:"primaryKey;size:21" json:"id"`
	SetID    string `gorm:"column:set_id;not null;size:21;index" json:"set"`
	Question string `gorm:"not null;size:1000" json:"question"`
	Answer   string `gorm:"not null;size:1000" json:"answer"`

	Set Set `gorm:"foreignKey:SetID" json:"-"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		c.ID = id
	}
	return nil
}
