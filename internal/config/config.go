package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	LLM      LLMConfig      `yaml:"llm"`
	Chat     ChatConfig     `yaml:"chat"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"               env:"SERVER_HOST"               env-default:"0.0.0.0"`
	Port             int           `yaml:"port"               env:"SERVER_PORT"               env-default:"8080"`
	ReadTimeout      time.Duration `yaml:"read_timeout"       env:"SERVER_READ_TIMEOUT"       env-default:"10s"`
	WriteTimeout     time.Duration `yaml:"write_timeout"      env:"SERVER_WRITE_TIMEOUT"      env-default:"60s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"       env:"SERVER_IDLE_TIMEOUT"       env-default:"60s"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"   env:"SERVER_SHUTDOWN_TIMEOUT"   env-default:"10s"`
	RateLimitPerMin  int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds JWT and refresh-token settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"tradescribe"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LLMConfig holds language-model client settings.
type LLMConfig struct {
	APIKey      string        `yaml:"api_key"      env:"LLM_API_KEY"      env-required:"true"`
	Model       string        `yaml:"model"        env:"LLM_MODEL"        env-default:"claude-sonnet-4-5"`
	MaxTokens   int64         `yaml:"max_tokens"   env:"LLM_MAX_TOKENS"   env-default:"1024"`
	CallTimeout time.Duration `yaml:"call_timeout" env:"LLM_CALL_TIMEOUT" env-default:"30s"`
}

// ChatConfig holds context-window sizes for the chat pipeline.
type ChatConfig struct {
	// HistoryTurns is the number of most recent chat messages replayed
	// into the model conversation.
	HistoryTurns int `yaml:"history_turns" env:"CHAT_HISTORY_TURNS" env-default:"10"`
	// ContextTrades is the number of most recent trades embedded as
	// analytical context for reply generation.
	ContextTrades int `yaml:"context_trades" env:"CHAT_CONTEXT_TRADES" env-default:"20"`
	// InsightTrades is the number of most recent trades sent for
	// narrative insight analysis.
	InsightTrades int `yaml:"insight_trades" env:"CHAT_INSIGHT_TRADES" env-default:"50"`
	// TitleMessages is the number of leading messages used for
	// chat auto-titling.
	TitleMessages int `yaml:"title_messages" env:"CHAT_TITLE_MESSAGES" env-default:"4"`
	// MaxMessageLen caps inbound chat message length in bytes.
	MaxMessageLen int `yaml:"max_message_len" env:"CHAT_MAX_MESSAGE_LEN" env-default:"4000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
