// Package logger 는 zap 로거 생성과 gin 용 요청 로깅/패닉 복구 미들웨어를 제공한다.
package logger

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 는 level("debug", "info", "warn", "error")에 맞춘 zap 로거를 만든다.
// development 가 true 면 콘솔 포맷, 아니면 JSON 포맷을 쓴다.
func New(level string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// GinLogger 는 요청마다 메서드, 경로, 상태코드, 처리시간을 남긴다.
// 요청/응답 본문은 기록하지 않는다.
func GinLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("dur", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("http", fields...)
		default:
			log.Info("http", fields...)
		}
	}
}

// GinRecovery 는 핸들러 패닉을 500 응답으로 바꾸고 스택을 기록한다.
func GinRecovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic",
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"result": "fail",
					"error":  "internal server error",
				})
			}
		}()
		c.Next()
	}
}
