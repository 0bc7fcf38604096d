package models

import "time"

type User struct {
	ID           uint      `gorm:"column:usuarioid;primaryKey" json:"usuarioid"`
	FirstName    string    `gorm:"column:nombre;size:100;not null" json:"nombre"`
	LastName     string    `gorm:"column:apellido;size:100" json:"apellido"`
	Username     string    `gorm:"column:nombreusuario;uniqueIndex;size:191;not null" json:"nombreusuario"`
	Email        string    `gorm:"column:correo;uniqueIndex;size:191;not null" json:"correo"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	RoleID       uint      `gorm:"column:rolid;not null" json:"rolid"`
	Role         *Role     `gorm:"foreignKey:RoleID;references:ID" json:"rol,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (User) TableName() string { return "usuario" }
