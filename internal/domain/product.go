package domain

import "time"

type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:191;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `gorm:"size:64;index" json:"category"`
	Image       string    `gorm:"size:255" json:"image"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	Stock       int       `gorm:"default:10" json:"stock"`
	IsTrending  bool      `gorm:"default:false" json:"isTrending"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Product) TableName() string { return "products" }

// ProductFilter 条件全部 AND 组合；零值表示不过滤
type ProductFilter struct {
	Category    string // 精确匹配，"all" 或空 = 不过滤
	Trending    bool
	NewArrivals bool // 最近 30 天上架
	Search      string // name/description 子串，大小写不敏感
}

type ProductRepository interface {
	Create(p *Product) error
	FindByID(id int64) (*Product, error)
	Query(f ProductFilter) ([]Product, error)
	Update(p *Product) error
	// Delete 连同引用该商品的收藏和购物车行一起删（级联）
	Delete(id int64) error
}
