package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name      string     `mapstructure:"name"`
	Mode      string     `mapstructure:"mode"`
	Port      int        `mapstructure:"port"`
	MachineID int64      `mapstructure:"machine_id"` // 雪花节点ID (0-1023)，用于slug后缀
	Cors      CorsConfig `mapstructure:"cors"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	Issuer    string `mapstructure:"issuer"`
	Blacklist string `mapstructure:"blacklist"` // memory 或 redis
}

// AuthConfig 密码哈希配置
type AuthConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver         string `mapstructure:"driver"` // mysql 或 sqlite
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	Database       string `mapstructure:"database"`
	Charset        string `mapstructure:"charset"`
	Path           string `mapstructure:"path"` // sqlite文件路径
	MaxIdleConns   int    `mapstructure:"max_idle_conns"`
	MaxOpenConns   int    `mapstructure:"max_open_conns"`
	LogLevel       string `mapstructure:"log_level"`
	ConnectRetries uint   `mapstructure:"connect_retries"`
}

// DSN 获取数据库连接字符串
func (c *DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.Path
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.Charset)
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns"`
}

// Addr 获取Redis地址
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
	Stdout     bool   `mapstructure:"stdout"`
}

// CorsConfig 跨域配置
type CorsConfig struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	ExposedHeaders   []string `mapstructure:"expose_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

// setDefaults 设置默认值，配置文件和环境变量会覆盖这些值
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "conduit-api")
	v.SetDefault("app.mode", "release")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.machine_id", 1)
	v.SetDefault("app.cors.allow_origins", []string{"*"})
	v.SetDefault("app.cors.allow_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	v.SetDefault("app.cors.allow_headers", []string{"Authorization", "Content-Type", "X-Request-ID"})

	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.path", "conduit.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.connect_retries", 5)

	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.stdout", true)

	v.SetDefault("jwt.issuer", "conduit-api")
	v.SetDefault("jwt.blacklist", "memory")

	v.SetDefault("auth.bcrypt_cost", 10)
}

// Load 从目录中读取 config.yaml，并允许环境变量覆盖 (例如 JWT_SECRET_KEY)
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(configPath)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 校验启动所必需的配置项
func (c *Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return errors.New("jwt.secret_key 不能为空")
	}
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("不支持的数据库驱动: %q", c.Database.Driver)
	}
	switch c.JWT.Blacklist {
	case "memory", "redis":
	default:
		return fmt.Errorf("不支持的黑名单类型: %q", c.JWT.Blacklist)
	}
	if c.App.MachineID < 0 || c.App.MachineID > 1023 {
		return fmt.Errorf("app.machine_id 超出范围: %d", c.App.MachineID)
	}
	return nil
}
