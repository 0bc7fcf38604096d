package models

import "time"

// Inscription registers a user for an event. The (usuarioid, eventoid)
// unique index is the real duplicate guard; service-level checks only
// produce a friendlier error.
type Inscription struct {
	ID        uint      `gorm:"column:inscripcionid;primaryKey" json:"inscripcionid"`
	UserID    uint      `gorm:"column:usuarioid;not null;uniqueIndex:idx_inscripcion_usuario_evento" json:"usuarioid"`
	EventID   uint      `gorm:"column:eventoid;not null;uniqueIndex:idx_inscripcion_usuario_evento" json:"eventoid"`
	Reference string    `gorm:"column:referencia;size:36;uniqueIndex" json:"referencia"`
	CreatedAt time.Time `json:"-"`
}

func (Inscription) TableName() string { return "inscripcion" }
