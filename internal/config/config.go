package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config アプリケーション全体の設定
// 外部プロバイダの設定はすべて任意で、未設定の場合は推定データで動作する
type Config struct {
	Server    ServerConfig
	Providers ProviderConfig
	Storage   StorageConfig
	Selection SelectionConfig
	Route     RouteConfig
	RateLimit RateLimitConfig
}

// ServerConfig HTTPサーバーの設定
type ServerConfig struct {
	Port string
}

// ProviderConfig 外部APIの認証情報
type ProviderConfig struct {
	GoogleMapsAPIKey  string
	KakaoRestAPIKey   string
	OpenWeatherAPIKey string
}

// StorageConfig 保存先の設定
type StorageConfig struct {
	RedisURL           string
	SupabaseURL        string
	SupabaseAnonKey    string
	SupabaseDBPassword string
	FirestoreProjectID string
	FirestoreCredsFile string
	SessionTTL         time.Duration
	WeatherCacheTTL    time.Duration
}

// SelectionConfig 候補選定の設定
type SelectionConfig struct {
	SearchTimeout time.Duration
}

// RouteConfig ルート作成の設定
type RouteConfig struct {
	Concurrency             int
	HalfDayMaxTravelMinutes float64
	HalfDayMaxPlaces        int
	SnapshotTTL             time.Duration
}

// RateLimitConfig リクエスト制限の設定
type RateLimitConfig struct {
	PerSecond float64
	Burst     int
}

// Load は .env を読み込み（存在すれば）、環境変数から設定を作る
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("📝 .envファイルが見つかりません。環境変数を使用します")
	}

	return Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Providers: ProviderConfig{
			GoogleMapsAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
			KakaoRestAPIKey:   os.Getenv("KAKAO_REST_API_KEY"),
			OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		},
		Storage: StorageConfig{
			RedisURL:           os.Getenv("REDIS_URL"),
			SupabaseURL:        os.Getenv("SUPABASE_URL"),
			SupabaseAnonKey:    os.Getenv("SUPABASE_ANON_KEY"),
			SupabaseDBPassword: os.Getenv("SUPABASE_DB_PASSWORD"),
			FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
			FirestoreCredsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
			SessionTTL:         getEnvAsDuration("SESSION_TTL", 2*time.Hour),
			WeatherCacheTTL:    getEnvAsDuration("WEATHER_CACHE_TTL", 10*time.Minute),
		},
		Selection: SelectionConfig{
			SearchTimeout: getEnvAsDuration("SEARCH_TIMEOUT", 10*time.Second),
		},
		Route: RouteConfig{
			Concurrency:             getEnvAsInt("ROUTE_CONCURRENCY", 1),
			HalfDayMaxTravelMinutes: getEnvAsFloat("HALF_DAY_MAX_TRAVEL_MINUTES", 120),
			HalfDayMaxPlaces:        getEnvAsInt("HALF_DAY_MAX_PLACES", 4),
			SnapshotTTL:             getEnvAsDuration("ROUTE_SNAPSHOT_TTL", 24*time.Hour),
		},
		RateLimit: RateLimitConfig{
			PerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 10),
			Burst:     getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
