package service

import "sync"

// TokenBlocklist 는 로그아웃된 access token 의 jti 를 모아 두는 프로세스 전역 집합이다.
// 메모리에만 있으므로 재시작하면 비워진다. 한 번 넣은 jti 는 빠지지 않는다.
type TokenBlocklist struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewTokenBlocklist() *TokenBlocklist {
	return &TokenBlocklist{ids: make(map[string]struct{})}
}

func (b *TokenBlocklist) Revoke(jti string) {
	b.mu.Lock()
	b.ids[jti] = struct{}{}
	b.mu.Unlock()
}

func (b *TokenBlocklist) IsRevoked(jti string) bool {
	b.mu.RLock()
	_, ok := b.ids[jti]
	b.mu.RUnlock()
	return ok
}

func (b *TokenBlocklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.ids)
}
