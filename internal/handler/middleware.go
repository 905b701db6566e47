package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recipe-book/backend/internal/config"
	"github.com/recipe-book/backend/internal/model"
	"github.com/recipe-book/backend/internal/service"
)

const authUserKey = "auth_user"

const (
	msgMissingAuthHeader = "Missing Authorization Header"
	msgTokenRevoked      = "Token has been revoked"
	msgInvalidToken      = "Invalid token"
)

// AuthMiddleware 는 Bearer 토큰을 검증하고 호출자 정보를 컨텍스트에 넣는다.
// 로그아웃된 토큰은 여기서 막혀 핸들러까지 가지 않는다.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, msgMissingAuthHeader)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			abortUnauthorized(c, msgMissingAuthHeader)
			return
		}

		user, err := authService.ParseAccessToken(token)
		if err != nil {
			if errors.Is(err, service.ErrTokenRevoked) {
				abortUnauthorized(c, msgTokenRevoked)
				return
			}
			abortUnauthorized(c, msgInvalidToken)
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

func GetAuthUser(c *gin.Context) *model.AuthUser {
	if value, ok := c.Get(authUserKey); ok {
		if user, ok := value.(*model.AuthUser); ok {
			return user
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, model.AuthErrorResponse{Msg: msg})
}

// CORSMiddleware 는 허용 목록에 있는 Origin 에만 CORS 헤더를 붙이고 preflight 는 204 로 끝낸다.
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				if cfg.AllowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
