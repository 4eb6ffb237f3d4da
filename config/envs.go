package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultMazeSize   = 301
	defaultOutputPath = "output.png"
)

// Config holds the maze generator's configuration values.
type Config struct {
	MazeWidth  int    // Width of the generated maze, must be odd
	MazeHeight int    // Height of the generated maze, must be odd
	MazeSeed   *int64 // Seed for the random source; nil picks a time-based one
	OutputPath string // Image file to write; the extension picks the format
	LogDebug   bool   // Enables per-walk debug logging
}

// ServerConfig holds the HTTP service's configuration values.
type ServerConfig struct {
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	DBHost          string // Hostname or IP address for the database
	DBPort          int    // Port number for the database
	DBUser          string // Username for the database
	DBPassword      string // Password for the database
	DBName          string // Name of the database
	RedisAddr       string // host:port of the Redis server
	RedisPassword   string // Password for the Redis server
	RedisDB         int    // Redis database index
	CacheTTLSeconds int    // Lifetime of cached maze images
	MaxDimension    int    // Largest width or height the API accepts
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
	LogDebug        bool   // Enables debug logging
}

// Envs holds the generator's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the generator configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	loadDotEnv()

	return Config{
		MazeWidth:  getEnvAsIntWithDefault("MAZE_WIDTH", defaultMazeSize),
		MazeHeight: getEnvAsIntWithDefault("MAZE_HEIGHT", defaultMazeSize),
		MazeSeed:   getEnvAsOptionalInt64("MAZE_SEED"),
		OutputPath: getEnvWithDefault("OUTPUT_PATH", defaultOutputPath),
		LogDebug:   getEnvAsBoolWithDefault("LOG_DEBUG", false),
	}
}

// LoadServer reads the HTTP service configuration, exiting if a required
// variable is missing.
func LoadServer() ServerConfig {
	loadDotEnv()

	return ServerConfig{
		DBHost:          mustGetEnv("DB_HOST"),
		DBPort:          mustGetEnvAsInt("DB_PORT"),
		DBUser:          mustGetEnv("DB_USER"),
		DBPassword:      mustGetEnv("DB_PASS"),
		DBName:          mustGetEnv("DB_NAME"),
		RedisAddr:       mustGetEnv("REDIS_ADDR"),
		RedisPassword:   getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:         getEnvAsIntWithDefault("REDIS_DB", 0),
		CacheTTLSeconds: getEnvAsIntWithDefault("CACHE_TTL_SECONDS", 3600),
		MaxDimension:    getEnvAsIntWithDefault("MAX_DIMENSION", 1001),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:       mustGetEnv("JWT_SECRET"),
		JWTIssuer:       mustGetEnv("JWT_ISSUER"),
		HostIP:          mustGetEnv("HOST_IP"),
		RESTPort:        mustGetEnvAsInt("REST_PORT"),
		LogDebug:        getEnvAsBoolWithDefault("LOG_DEBUG", false),
	}
}

// loadDotEnv loads a .env file if one is available.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling
// back to defaultValue when it is unset or not a number.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}

func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsOptionalInt64 returns nil when key is unset or not a number.
func getEnvAsOptionalInt64(key string) *int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be an integer, ignoring it: %v", key, err)
		return nil
	}
	return &value
}
