package domain

import "time"

type Favorite struct {
	UserEmail string    `gorm:"primaryKey;size:191" json:"user_email"`
	ProductID int64     `gorm:"primaryKey" json:"product_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Favorite) TableName() string { return "user_favorites" }

// ToggleOutcome 记录 toggle 实际走了哪个方向
type ToggleOutcome string

const (
	ToggleAdded   ToggleOutcome = "added"
	ToggleRemoved ToggleOutcome = "removed"
)

type FavoriteRepository interface {
	Add(email string, productID int64) error
	Remove(email string, productID int64) error
	Toggle(email string, productID int64) (ToggleOutcome, error)
	// ReplaceAll 先全删后插入，一个事务；重复 id 静默忽略
	ReplaceAll(email string, productIDs []int64) error
	ListProducts(email string) ([]Product, error)
	ListIDs(email string) ([]int64, error)
}
