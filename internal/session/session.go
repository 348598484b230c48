// Package session 持有“当前身份”这件事的唯一入口。
// 身份从 游客 切到 账号 的那次转换在这里触发一次性对账（购物车合并、
// 收藏并集替换），对账成功之前身份不算落定。
package session

import (
	"sync"

	"go.uber.org/zap"

	"artemon-api/internal/domain"
	"artemon-api/internal/service"
)

// Identity 登录账号的公开画像字段
type Identity struct {
	ID          int64  `json:"id"`
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Role        string `json:"role"`
}

// Snapshot 游客在本地攒下的购物车和收藏，登录时一次性并入账号
type Snapshot struct {
	Cart        []domain.GuestCartLine `json:"cart"`
	FavoriteIDs []int64                `json:"favorite_ids"`
}

func (s Snapshot) Empty() bool {
	return len(s.Cart) == 0 && len(s.FavoriteIDs) == 0
}

// Session 显式传递的会话对象，不落任何全局变量
type Session struct {
	mu       sync.RWMutex
	identity *Identity
}

// Identity 纯读；未登录返回 nil
func (s *Session) Identity() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	cp := *s.identity
	return &cp
}

func (s *Session) clear() {
	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()
}

type Manager struct {
	accounts   *service.AccountService
	reconciler *service.ReconcileService
	log        *zap.Logger
}

func NewManager(accounts *service.AccountService, reconciler *service.ReconcileService, log *zap.Logger) *Manager {
	return &Manager{accounts: accounts, reconciler: reconciler, log: log}
}

// SignIn 校验凭证，然后在身份落定前执行一次对账。
// 对账失败则整个登录失败，游客快照未被消费，可以原样重试。
func (m *Manager) SignIn(email, credential string, snap Snapshot) (*Session, error) {
	u, err := m.accounts.Authenticate(email, credential)
	if err != nil {
		return nil, err
	}
	if err := m.reconcile(u.Email, snap); err != nil {
		return nil, err
	}
	return &Session{identity: &Identity{
		ID:          u.ID,
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Phone:       u.Phone,
		Address:     u.Address,
		Role:        u.Role,
	}}, nil
}

// SignOut 只清会话身份，持久化数据不动
func (m *Manager) SignOut(s *Session) {
	if s != nil {
		s.clear()
	}
}

func (m *Manager) reconcile(email string, snap Snapshot) error {
	if snap.Empty() {
		return nil
	}
	if len(snap.Cart) > 0 {
		if err := m.reconciler.MergeGuestCart(email, snap.Cart); err != nil {
			return err
		}
	}
	if len(snap.FavoriteIDs) > 0 {
		// 替换是破坏性的，先和服务端已有收藏求并集再替换
		existing, err := m.reconciler.ListFavoriteIDs(email)
		if err != nil {
			return err
		}
		if err := m.reconciler.ReplaceFavorites(email, unionIDs(existing, snap.FavoriteIDs)); err != nil {
			return err
		}
	}
	m.log.Info("guest state reconciled",
		zap.String("email", email),
		zap.Int("cart_lines", len(snap.Cart)),
		zap.Int("favorites", len(snap.FavoriteIDs)))
	return nil
}

func unionIDs(a, b []int64) []int64 {
	seen := make(map[int64]struct{}, len(a)+len(b))
	out := make([]int64, 0, len(a)+len(b))
	for _, id := range a {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
