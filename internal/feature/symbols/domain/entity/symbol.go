// Package entity defines the domain models for the symbols feature.
package entity

import "time"

// Symbol represents a tradable instrument on the Tehran Stock Exchange.
// Code holds the Persian ticker (e.g. "فولاد") and is unique per instrument.
type Symbol struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:32;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	Market    string    `gorm:"size:100"`
	Industry  string    `gorm:"size:100"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
