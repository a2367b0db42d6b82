package models

import (
	"time"
)

type User struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string     `gorm:"unique;not null"          json:"email"`
	Name      string     `json:"name"`
	Feedbacks []Feedback `gorm:"foreignKey:AuthorID"      json:"feedbacks,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"not null"                 json:"name"`
	Products []Product `json:"products,omitempty"`
}

type Brand struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null"                 json:"name"`
}

type Product struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"not null"                 json:"name"`
	Description string     `json:"description"`
	Price       float64    `gorm:"not null"                 json:"price"`
	Stock       uint       `gorm:"default:0"                json:"stock"`
	CategoryID  uint       `gorm:"index;not null"           json:"categoryId"`
	Category    *Category  `json:"category,omitempty"`
	Feedbacks   []Feedback `json:"feedbacks,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type Feedback struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Content   string    `json:"content"`
	Rating    int       `gorm:"not null;default:0"       json:"rating"`
	AuthorID  uint      `gorm:"index"                    json:"authorId"`
	ProductID uint      `gorm:"index"                    json:"productId"`
	Author    *User     `gorm:"foreignKey:AuthorID"      json:"author,omitempty"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Admin is a back-office account, separate from the public User entity.
type Admin struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"unique;not null"          json:"username"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	Role         string `gorm:"not null"                 json:"role"`
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"      json:"id"`
	Token     string    `gorm:"unique;not null" json:"token"`
	AdminID   uint      `gorm:"index;not null"  json:"admin_id"`
	Role      string    `gorm:"not null"        json:"role"`
	ExpiresAt time.Time `gorm:"not null"        json:"expires_at"`
	Revoked   bool      `gorm:"default:false"   json:"revoked"`
}
