// Package crypto 는 비밀번호 해시/검증 유틸을 제공한다. 상태 없는 순수 함수만 둔다.
package crypto

import "golang.org/x/crypto/bcrypt"

// HashPassword 는 평문 비밀번호를 salt 가 포함된 bcrypt 해시로 만든다.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword 는 평문 비밀번호가 저장된 해시와 일치하는지 확인한다.
func CheckPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
