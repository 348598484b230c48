package domain

import "time"

// CartItem 每个 (user_email, product_id) 至多一行，复合主键兜底去重
type CartItem struct {
	UserEmail string    `gorm:"primaryKey;size:191" json:"user_email"`
	ProductID int64     `gorm:"primaryKey" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (CartItem) TableName() string { return "cart_items" }

// CartLine 购物车读取视图：商品数据 + 数量
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// GuestCartLine 游客本地购物车的一行，登录时合并用
type GuestCartLine struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type CartRepository interface {
	// Upsert 直接覆盖数量（不是累加）
	Upsert(email string, productID int64, quantity int) error
	Remove(email string, productID int64) error
	Clear(email string) error
	List(email string) ([]CartLine, error)
	// MergeLines 游客购物车合并：同款累加、新款插入，一个事务内全部生效或全部回滚
	MergeLines(email string, lines []GuestCartLine) error
}
