// api/config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration        `mapstructure:"server"`
	Neo4j         DatabaseConfiguration      `mapstructure:"neo4j"`
	Redis         RedisConfiguration         `mapstructure:"redis"`
	Cache         CacheConfiguration         `mapstructure:"cache"`
	Auth          AuthConfiguration          `mapstructure:"auth"`
	RateLimit     RateLimitConfiguration     `mapstructure:"ratelimit"`
	Elasticsearch ElasticsearchConfiguration `mapstructure:"elasticsearch"`
	Log           LogConfiguration           `mapstructure:"log"`
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdowntimeout"`
}

// DatabaseConfiguration stores data for database connection
type DatabaseConfiguration struct {
	URI         string `mapstructure:"uri"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
	MaxPoolSize int    `mapstructure:"maxpoolsize"`
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	DialTimeout  time.Duration `mapstructure:"dialtimeout"`
	ReadTimeout  time.Duration `mapstructure:"readtimeout"`
	WriteTimeout time.Duration `mapstructure:"writetimeout"`
	PoolSize     int           `mapstructure:"poolsize"`
	PoolTimeout  time.Duration `mapstructure:"pooltimeout"`
	KeyPrefix    string        `mapstructure:"keyprefix"`
}

// CacheConfiguration selects the cache backend and the TTL per key class
type CacheConfiguration struct {
	Type            string                `mapstructure:"type"` // "redis" or "in-memory"
	OpTimeout       time.Duration         `mapstructure:"optimeout"`
	CleanupInterval time.Duration         `mapstructure:"cleanupinterval"`
	TTL             CacheTTLConfiguration `mapstructure:"ttl"`
}

// CacheTTLConfiguration holds the TTL of each cache key class
type CacheTTLConfiguration struct {
	Entity     time.Duration `mapstructure:"entity"`
	Collection time.Duration `mapstructure:"collection"`
	Filtered   time.Duration `mapstructure:"filtered"`
	Search     time.Duration `mapstructure:"search"`
}

// AuthConfiguration stores token signing settings
type AuthConfiguration struct {
	JWTSecret     string        `mapstructure:"jwtsecret"`
	Issuer        string        `mapstructure:"issuer"`
	TokenLifetime time.Duration `mapstructure:"tokenlifetime"`
}

// RateLimitConfiguration stores the per-identity request budget
type RateLimitConfiguration struct {
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	Enabled    bool   `mapstructure:"enabled"`
	URL        string `mapstructure:"url"`
	AuditIndex string `mapstructure:"auditindex"`
}

// LogConfiguration stores logger settings
type LogConfiguration struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	setDefaults()

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.shutdownTimeout", "5s")

	viper.SetDefault("neo4j.uri", "bolt://localhost:7687")
	viper.SetDefault("neo4j.username", "neo4j")
	viper.SetDefault("neo4j.maxPoolSize", 50)

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.dialTimeout", "5s")
	viper.SetDefault("redis.readTimeout", "3s")
	viper.SetDefault("redis.writeTimeout", "3s")
	viper.SetDefault("redis.poolSize", 20)
	viper.SetDefault("redis.poolTimeout", "4s")
	viper.SetDefault("redis.keyPrefix", "restaurant_app:")

	viper.SetDefault("cache.type", "redis")
	viper.SetDefault("cache.opTimeout", "200ms")
	viper.SetDefault("cache.cleanupInterval", "1m")
	viper.SetDefault("cache.ttl.entity", "30m")
	viper.SetDefault("cache.ttl.collection", "10m")
	viper.SetDefault("cache.ttl.filtered", "10m")
	viper.SetDefault("cache.ttl.search", "5m")

	viper.SetDefault("auth.issuer", "restro-api")
	viper.SetDefault("auth.tokenLifetime", "168h")

	viper.SetDefault("rateLimit.requests", 100)
	viper.SetDefault("rateLimit.window", "15m")

	viper.SetDefault("elasticsearch.enabled", false)
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("elasticsearch.auditIndex", "restaurant-audit-logs")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.dir", "logging")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 retrieves a float64 value from the configuration
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
