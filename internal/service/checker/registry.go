package checker

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry 登录令牌到面板会话的映射
// 登录成功时签发 uuid 令牌并创建会话；后续请求凭令牌取回同一会话。
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*registryEntry
	ttl      time.Duration
}

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

// NewRegistry 创建会话注册表
// ttl 为空闲会话的保留时长，到期后在后续访问时惰性清理
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*registryEntry),
		ttl:      ttl,
	}
}

// Create 为登录员工创建会话并签发令牌
func (r *Registry) Create(employeeID uint, employeeName string, companyID uint) (string, *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeIdleLocked(time.Now())

	token := uuid.NewString()
	sess := NewSession(employeeID, employeeName, companyID)
	r.sessions[token] = &registryEntry{session: sess, lastSeen: time.Now()}
	return token, sess
}

// Get 按令牌取回会话并刷新活跃时间
func (r *Registry) Get(token string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeIdleLocked(time.Now())

	entry, ok := r.sessions[token]
	if !ok {
		return nil, false
	}
	entry.lastSeen = time.Now()
	return entry.session, true
}

// Delete 注销令牌（登出）
func (r *Registry) Delete(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

func (r *Registry) purgeIdleLocked(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for token, entry := range r.sessions {
		if now.Sub(entry.lastSeen) > r.ttl {
			delete(r.sessions, token)
		}
	}
}
