package models

type EventType struct {
	ID          uint   `gorm:"column:tipoeventoid;primaryKey" json:"tipoeventoid"`
	Description string `gorm:"column:descripcion;size:191;not null" json:"descripcion"`
}

func (EventType) TableName() string { return "tipoevento" }
