package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL      string // あれば POSTGRES_* より優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string // disable / require

	AuthSecret             string        // 認証チケット(JWT)の署名シークレット
	AuthCookieName         string        // 認証チケットのcookie名
	AuthCookieTimeout      time.Duration // remember-me 時の有効期間
	CookieHashKey          []byte        // composer cookie の署名鍵
	CookieBlockKey         []byte        // composer cookie の暗号鍵
	CookieSecure           bool          // https のみ
	PasswordMinLength      int           // パスワード最低文字数
	RequireAccountApproval bool          // 新規会員を承認待ちにする
	PasswordResetURL       string        // 再設定メールのリンク先

	DefaultScope             string // スコープ未指定時
	DefaultCulture           string // en-CA
	DefaultCurrency          string // CAD
	CartName                 string // Default
	WishListName             string // WishList
	AvailableStatuses        []string
	DefaultInventoryLocation string

	RedisAddr     string // 空ならプロセス内キャッシュ
	RedisPassword string
	CacheTTL      time.Duration
	CacheSize     int

	ImageBaseURL     string
	ImageFolderName  string
	FallbackImageURL string

	LogLevel string // debug/info/warn/error
	GoEnv    string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	pgPort, err := atoiOr("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	cacheSize, err := atoiOr("CACHE_SIZE", 10000)
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := durationOr("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}
	timeoutMin, err := atoiOr("AUTH_COOKIE_TIMEOUT_MINUTES", 60*24*14)
	if err != nil {
		return Config{}, err
	}
	minLen, err := atoiOr("PASSWORD_MIN_LENGTH", 6)
	if err != nil {
		return Config{}, err
	}
	secure, err := boolOr("COOKIE_SECURE", false)
	if err != nil {
		return Config{}, err
	}
	approval, err := boolOr("REQUIRE_ACCOUNT_APPROVAL", false)
	if err != nil {
		return Config{}, err
	}
	hashKey, err := keyBytes("COOKIE_HASH_KEY")
	if err != nil {
		return Config{}, err
	}
	blockKey, err := keyBytes("COOKIE_BLOCK_KEY")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresPort:     pgPort,
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		AuthSecret:             os.Getenv("AUTH_SECRET"),
		AuthCookieName:         getenv("AUTH_COOKIE_NAME", "composer_auth"),
		AuthCookieTimeout:      time.Duration(timeoutMin) * time.Minute,
		CookieHashKey:          hashKey,
		CookieBlockKey:         blockKey,
		CookieSecure:           secure,
		PasswordMinLength:      minLen,
		RequireAccountApproval: approval,
		PasswordResetURL:       os.Getenv("PASSWORD_RESET_URL"),

		DefaultScope:             getenv("DEFAULT_SCOPE", "Global"),
		DefaultCulture:           getenv("DEFAULT_CULTURE", "en-CA"),
		DefaultCurrency:          getenv("DEFAULT_CURRENCY", "CAD"),
		CartName:                 getenv("CART_NAME", "Default"),
		WishListName:             getenv("WISHLIST_NAME", "WishList"),
		AvailableStatuses:        splitList(getenv("INVENTORY_AVAILABLE_STATUSES", "InStock,BackOrder")),
		DefaultInventoryLocation: os.Getenv("DEFAULT_INVENTORY_LOCATION"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheTTL:      cacheTTL,
		CacheSize:     cacheSize,

		ImageBaseURL:     getenv("IMAGE_BASE_URL", "http://localhost:8080"),
		ImageFolderName:  getenv("IMAGE_FOLDER_NAME", "images"),
		FallbackImageURL: os.Getenv("FALLBACK_IMAGE_URL"),

		LogLevel: getenv("LOG_LEVEL", "info"),
		GoEnv:    getenv("GO_ENV", "dev"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.DatabaseURL == "" {
		if cfg.PostgresUser == "" {
			return Config{}, fmt.Errorf("POSTGRES_USER is required")
		}
		if cfg.PostgresPassword == "" {
			return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
		}
		if cfg.PostgresDB == "" {
			return Config{}, fmt.Errorf("POSTGRES_DB is required")
		}
		if cfg.PostgresHost == "" {
			return Config{}, fmt.Errorf("POSTGRES_HOST is required")
		}
	}
	if cfg.AuthSecret == "" {
		return Config{}, fmt.Errorf("AUTH_SECRET is required")
	}
	if len(cfg.CookieHashKey) == 0 {
		return Config{}, fmt.Errorf("COOKIE_HASH_KEY is required")
	}
	if len(cfg.CookieBlockKey) == 0 {
		return Config{}, fmt.Errorf("COOKIE_BLOCK_KEY is required")
	}
	switch len(cfg.CookieBlockKey) {
	case 16, 24, 32:
	default:
		return Config{}, fmt.Errorf("COOKIE_BLOCK_KEY must be 16, 24 or 32 bytes")
	}
	if cfg.PasswordMinLength <= 0 {
		return Config{}, fmt.Errorf("PASSWORD_MIN_LENGTH must be positive")
	}

	return cfg, nil
}

// DSN は gorm(postgres) の接続文字列
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// Addr は listen アドレス（":8080"）
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) IsProd() bool {
	return c.GoEnv == "prod"
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiOr(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func boolOr(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be bool: %w", key, err)
	}
	return b, nil
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}

// 鍵は hex で渡す（それ以外は生の文字列）
func keyBytes(key string) ([]byte, error) {
	v := os.Getenv(key)
	if v == "" {
		return nil, nil
	}
	if b, err := hex.DecodeString(v); err == nil {
		return b, nil
	}
	return []byte(v), nil
}

func splitList(v string) []string {
	out := []string{}
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
