package service

import "errors"

var (
	ErrInvalidPasswordLength = errors.New("invalid password length")
	ErrEmailTaken            = errors.New("email already registered")
	ErrNotMember             = errors.New("not a registered member")
	ErrWrongPassword         = errors.New("incorrect password")

	ErrUnauthorized  = errors.New("unauthorized")
	ErrTokenRevoked  = errors.New("token revoked")
	ErrMisconfigured = errors.New("auth config invalid")

	ErrRecipeNotFound = errors.New("recipe not found")
)

// ValidationError 는 입력 형식 검증 실패. Message 가 그대로 클라이언트에 내려간다.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
