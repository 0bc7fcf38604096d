package models

type Organizer struct {
	ID      uint `gorm:"column:organizadorid;primaryKey" json:"organizadorid"`
	UserID  uint `gorm:"column:usuarioid;not null" json:"usuarioid"`
	EventID uint `gorm:"column:eventoid;not null" json:"eventoid"`
}

func (Organizer) TableName() string { return "organizador" }
