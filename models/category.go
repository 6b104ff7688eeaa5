package models

// Category represents a product category.
// OwnerID references the owning User; User is filled by the catalog join
// and is never persisted. Position is the row's index in its fixture file.
type Category struct {
	ID       uint   `gorm:"primaryKey" yaml:"id"`
	Title    string `gorm:"not null" yaml:"title"`
	Icon     string `gorm:"not null" yaml:"icon"`
	OwnerID  uint   `gorm:"not null;index" yaml:"ownerId"`
	User     *User  `gorm:"-" yaml:"-"`
	Position int    `gorm:"not null;default:0;index" yaml:"-"`
}

func (c *Category) TableName() string {
	return "categories"
}
