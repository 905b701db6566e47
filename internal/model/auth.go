package model

// AuthUser - 검증된 access token 에서 꺼낸 호출자 정보
type AuthUser struct {
	ID      int64
	TokenID string
}
