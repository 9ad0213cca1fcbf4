package models

import (
	"time"
)

type RefreshToken struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         string    `gorm:"type:uuid;not null" json:"userId"`
	Token          string    `gorm:"not null" json:"token"`
	ExpirationDate time.Time `gorm:"not null" json:"expiry"`
}
