package models

// Product represents a product in the catalog.
// Category and User are resolved by the catalog join; User is reached
// through Category.OwnerID and is never stored on the product row.
type Product struct {
	ID         uint      `gorm:"primaryKey" yaml:"id"`
	Name       string    `gorm:"not null" yaml:"name"`
	CategoryID uint      `gorm:"not null;index" yaml:"categoryId"`
	Category   *Category `gorm:"-" yaml:"-"`
	User       *User     `gorm:"-" yaml:"-"`
	Position   int       `gorm:"not null;default:0;index" yaml:"-"`
}

func (p *Product) TableName() string {
	return "products"
}
