package service

import (
	"strings"

	"artemon-api/internal/domain"
	"artemon-api/pkg/utils"
)

type AccountService struct {
	users domain.UserRepository
}

func NewAccountService(users domain.UserRepository) *AccountService {
	return &AccountService{users: users}
}

// Register 注册新账号，邮箱重复返回 ErrEmailTaken
func (s *AccountService) Register(name, email, password string) (*domain.User, error) {
	u := &domain.User{
		UID:          utils.NewID(),
		Email:        strings.TrimSpace(email),
		DisplayName:  strings.TrimSpace(name),
		PasswordHash: utils.HashPassword(password),
		Role:         domain.RoleCustomer,
	}
	if err := s.users.Create(u); err != nil {
		if isDupKey(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Authenticate 账号不存在和密码错误都归为 ErrInvalidCredential
func (s *AccountService) Authenticate(email, password string) (*domain.User, error) {
	u, err := s.users.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, domain.ErrInvalidCredential
	}
	return u, nil
}

// EnsureAdmin 首次部署时种一个管理员：账号不存在就建，已存在只提权，
// 不覆盖已有密码。email 为空表示不启用。
func (s *AccountService) EnsureAdmin(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return err
	}
	if u == nil {
		if _, err := s.Register("Admin", email, password); err != nil {
			return err
		}
	}
	return s.users.Promote(email)
}

func (s *AccountService) List() ([]domain.User, error) { return s.users.List() }

func (s *AccountService) FindByID(id int64) (*domain.User, error) { return s.users.FindByID(id) }

func (s *AccountService) UpdateProfile(id int64, p domain.ProfileUpdate) (*domain.User, error) {
	u, err := s.users.UpdateProfile(id, p)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *AccountService) Promote(email string) error {
	if err := s.users.Promote(email); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *AccountService) Delete(id int64) error {
	if err := s.users.Delete(id); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func isDupKey(err error) bool {
	// 不依赖 gorm.ErrDuplicatedKey，避免驱动差异
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
