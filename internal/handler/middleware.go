package handler

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/infrastructure/auth"
)

const userIDKey = "userID"

// CurrentUserID は認証済みユーザーのIDを返す。匿名の場合は空文字
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// AuthMiddleware は Authorization ヘッダーがあればトークンを検証してユーザーIDを設定する
// ヘッダーがない場合は匿名として続行する
func AuthMiddleware(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || authenticator == nil {
			c.Next()
			return
		}

		token := auth.BearerToken(header)
		userID, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.Printf("⚠️ 認証に失敗: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "認証に失敗しました",
				"details": model.ErrUnauthorized.Error(),
			})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// RequireUser はログインしていないリクエストを 401 で拒否する
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "ログインが必要です",
				"details": model.ErrUnauthorized.Error(),
			})
			return
		}
		c.Next()
	}
}

// IPRateLimiter はクライアントIPごとのトークンバケット
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
}

// NewIPRateLimiter は新しいIPRateLimiterインスタンスを作成
// 一定時間アクセスのないIPのリミッターは破棄する
func NewIPRateLimiter(perSecond float64, burst int) *IPRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &IPRateLimiter{
		limiters: cache.New(10*time.Minute, 5*time.Minute),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

// Allow は ip のリクエストを許可するか判定する
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	var limiter *rate.Limiter
	if v, found := l.limiters.Get(ip); found {
		limiter = v.(*rate.Limiter)
	} else {
		limiter = rate.NewLimiter(l.limit, l.burst)
	}
	l.limiters.SetDefault(ip, limiter)
	l.mu.Unlock()

	return limiter.Allow()
}

// RateLimitMiddleware は制限を超えたリクエストを 429 で拒否する
func RateLimitMiddleware(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "リクエストが多すぎます",
				"details": "しばらく待ってから再度お試しください",
			})
			return
		}
		c.Next()
	}
}
