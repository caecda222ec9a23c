// Package entity defines the domain models for the watchlist feature.
package entity

// Symbol is one underlying on the ingest watchlist.
type Symbol struct {
	ID       uint   `gorm:"primaryKey"`
	Ticker   string `gorm:"size:32;uniqueIndex;not null"`
	Name     string `gorm:"size:255;not null"`
	IsActive bool   `gorm:"not null;default:true"`
	SortKey  int    `gorm:"not null;default:0"`
}
