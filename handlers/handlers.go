package handlers

import (
	"gorm.io/gorm"
)

type DBHandler struct {
	*gorm.DB
}
