package models

// Sex values carried by User.Sex.
const (
	SexMale   = "m"
	SexFemale = "f"
)

// User represents a catalog user who may own categories.
type User struct {
	ID       uint   `gorm:"primaryKey" yaml:"id"`
	Name     string `gorm:"not null" yaml:"name"`
	Sex      string `gorm:"size:1;not null" yaml:"sex"`
	Position int    `gorm:"not null;default:0;index" yaml:"-"`
}

func (u *User) TableName() string {
	return "users"
}
