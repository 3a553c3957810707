package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	Spider SpiderConfig `mapstructure:"spider"`
	Sync   SyncConfig   `mapstructure:"sync"`
	LLM    LLMConfig    `mapstructure:"llm"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MongoConfig Mongo配置，存放Agent会话历史
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// SpiderConfig 第三方采集API配置
type SpiderConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	BackupURL   string `mapstructure:"backup_url"`
	Token       string `mapstructure:"token"`
	TimeoutSec  int    `mapstructure:"timeout_sec"`
	MaxAttempts int    `mapstructure:"max_attempts"`
	// RetryDelayMs 线性退避基数，第 k 次失败后等待 k*RetryDelayMs
	RetryDelayMs int `mapstructure:"retry_delay_ms"`
}

// SyncConfig 同步管道配置
type SyncConfig struct {
	UserID string `mapstructure:"user_id"`
	// BudgetMs 单次批量同步的总时间预算
	BudgetMs int `mapstructure:"budget_ms"`
	// MarginMs 预算安全余量，超过 budget-margin 即停止取新任务
	MarginMs     int    `mapstructure:"margin_ms"`
	BatchSize    int    `mapstructure:"batch_size"`
	ThrottleMs   int    `mapstructure:"throttle_ms"`
	CommentLimit int    `mapstructure:"comment_limit"`
	CronSpec     string `mapstructure:"cron_spec"`
}

type LLMConfig struct {
	URL         string           `mapstructure:"url"`
	TextModel   string           `mapstructure:"text_model"`
	VisionModel string           `mapstructure:"vision_model"`
	ApiKey      string           `mapstructure:"api_key"`
	PromptsPath PromptPathConfig `mapstructure:"prompts_path"`
}

type PromptPathConfig struct {
	Chat    string `mapstructure:"chat"`
	Topic   string `mapstructure:"topic"`
	Extract string `mapstructure:"extract"`
}
