package config

type GinConfig struct {
	Addr             string   `yaml:"addr" mapstructure:"addr"`
	AllowOrigins     []string `yaml:"allowOrigins" mapstructure:"allowOrigins"`
	AllowMethods     []string `yaml:"allowMethods" mapstructure:"allowMethods"`
	AllowHeaders     []string `yaml:"allowHeaders" mapstructure:"allowHeaders"`
	ExposeHeaders    []string `yaml:"exposeHeaders" mapstructure:"exposeHeaders"`
	AllowCredentials bool     `yaml:"allowCredentials" mapstructure:"allowCredentials"`
	MaxAge           int      `yaml:"maxAge" mapstructure:"maxAge"` // seconds
	PublicPaths      []string `yaml:"publicPaths" mapstructure:"publicPaths"`
}

func (GinConfig) Key() string {
	return "gin"
}

type DBConfig struct {
	DSN string `yaml:"dsn" mapstructure:"dsn"`
}

func (DBConfig) Key() string {
	return "db"
}

type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Password string `yaml:"password" mapstructure:"password"`
	DB       int    `yaml:"db" mapstructure:"db"`
}

func (RedisConfig) Key() string {
	return "redis"
}

type JWTConfig struct {
	JWTKey            string `yaml:"jwtKey" mapstructure:"jwtKey"`
	RefreshKey        string `yaml:"refreshKey" mapstructure:"refreshKey"`
	JWTExpiration     int    `yaml:"jwtExpiration" mapstructure:"jwtExpiration"`         // seconds
	RefreshExpiration int    `yaml:"refreshExpiration" mapstructure:"refreshExpiration"` // seconds
}

func (JWTConfig) Key() string {
	return "jwt"
}

type StorageConfig struct {
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	UseSSL   bool   `yaml:"useSSL" mapstructure:"useSSL"`
	Bucket   string `yaml:"bucket" mapstructure:"bucket"`
}

func (StorageConfig) Key() string {
	return "storage"
}

type KafkaConfig struct {
	Addrs   []string `yaml:"addrs" mapstructure:"addrs"`
	GroupID string   `yaml:"groupId" mapstructure:"groupId"`
}

func (KafkaConfig) Key() string {
	return "kafka"
}

type LeaderboardConfig struct {
	CacheTTLSeconds int `yaml:"cacheTTLSeconds" mapstructure:"cacheTTLSeconds"`
}

func (LeaderboardConfig) Key() string {
	return "leaderboard"
}
