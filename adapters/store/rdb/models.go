package rdb

import "time"

// ObjectRecord is the RDB persistence model for objstore.Object.
// Table name: objects. Maps are stored as JSON text.
type ObjectRecord struct {
	Kind        string    `gorm:"primaryKey;type:text;not null"`
	Namespace   string    `gorm:"primaryKey;type:text;not null"`
	Name        string    `gorm:"primaryKey;type:text;not null"`
	Labels      string    `gorm:"type:text"`
	Annotations string    `gorm:"type:text"`
	Data        string    `gorm:"type:text"`
	Route       string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (ObjectRecord) TableName() string { return "objects" }
