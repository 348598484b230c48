package domain

import "time"

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UID          string    `gorm:"uniqueIndex;size:36" json:"uid"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	DisplayName  string    `gorm:"size:64;not null" json:"displayName"`
	Phone        string    `gorm:"size:32" json:"phone"`
	Address      string    `gorm:"size:255" json:"address"`
	Role         string    `gorm:"size:16;not null;default:customer" json:"role"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (User) TableName() string { return "users" }

// ProfileUpdate 只允许改这三个字段，email/role 走别的通道
type ProfileUpdate struct {
	DisplayName string
	Phone       string
	Address     string
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id int64) (*User, error)
	FindByEmail(email string) (*User, error)
	List() ([]User, error)
	UpdateProfile(id int64, p ProfileUpdate) (*User, error)
	Promote(email string) error
	// Delete 连同该用户的收藏和购物车行一起删（级联）
	Delete(id int64) error
}
