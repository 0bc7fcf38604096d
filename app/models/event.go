package models

import "time"

type Event struct {
	ID          uint       `gorm:"column:eventoid;primaryKey" json:"eventoid"`
	Name        string     `gorm:"column:nombre;size:191;not null" json:"nombre"`
	Date        time.Time  `gorm:"column:fecha;not null" json:"fecha"`
	Location    string     `gorm:"column:ubicacion;size:255" json:"ubicacion"`
	Image       string     `gorm:"column:imagen;size:512" json:"imagen"`
	EventTypeID uint       `gorm:"column:tipoeventoid;not null" json:"tipoeventoid"`
	EventType   *EventType `gorm:"foreignKey:EventTypeID;references:ID" json:"tipoevento,omitempty"`
}

func (Event) TableName() string { return "evento" }
