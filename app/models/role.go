package models

// AdminRoleID is the role every admin-only gate checks against.
const AdminRoleID uint = 1

type Role struct {
	ID   uint   `gorm:"column:rolid;primaryKey" json:"rolid"`
	Name string `gorm:"column:nombrerol;uniqueIndex;size:100;not null" json:"nombrerol"`
}

func (Role) TableName() string { return "rol" }
