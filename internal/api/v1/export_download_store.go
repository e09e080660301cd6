package v1

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// downloadTicket 一次性导出下载凭据
type downloadTicket struct {
	filePath  string
	fileName  string
	expiresAt time.Time
}

// exportDownloadStore 导出工作簿的令牌表
// 导出时签发令牌，下载时兑付并作废；过期凭据在签发时顺带清理
type exportDownloadStore struct {
	mu      sync.Mutex
	tickets map[string]downloadTicket
}

func newExportDownloadStore() *exportDownloadStore {
	return &exportDownloadStore{tickets: make(map[string]downloadTicket)}
}

// issue 为导出文件签发下载令牌
func (s *exportDownloadStore) issue(filePath, fileName string, ttl time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, tk := range s.tickets {
		if now.After(tk.expiresAt) {
			delete(s.tickets, token)
		}
	}

	token := uuid.NewString()
	s.tickets[token] = downloadTicket{
		filePath:  filePath,
		fileName:  fileName,
		expiresAt: now.Add(ttl),
	}
	return token
}

// redeem 兑付令牌：命中即作废，过期视为不存在
func (s *exportDownloadStore) redeem(token string) (downloadTicket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tk, ok := s.tickets[token]
	if !ok {
		return downloadTicket{}, false
	}
	delete(s.tickets, token)
	if time.Now().After(tk.expiresAt) {
		return downloadTicket{}, false
	}
	return tk, true
}
