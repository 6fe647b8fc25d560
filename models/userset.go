package models

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

// UserSet marks a set as a favorite of a user. Duplicates are permitted:
// favoriting the same set twice creates two rows. Rows are removed when the
// referenced set is deleted (cascade handled by the set handler, not the
// store).
type UserSet struct {
	ID     string `gorm:"primaryKey;size:21" json:"id"`
	UserID string `gorm:"column:user_id;not null;size:100;index" json:"user"`
	SetID  string `gorm:"column:set_id;not null;size:21;index" json:"set"`

	Set Set `gorm:"foreignKey:SetID" json:"-"`
}

func (us *UserSet) BeforeCreate(tx *gorm.DB) error {
	if us.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		us.ID = id
	}
	return nil
}
