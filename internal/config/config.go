package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type Redis struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type Postgres struct {
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
}

type Catalog struct {
	APIKey  string
	BaseURL string
}

type Session struct {
	KeyPrefix string
	TTL       time.Duration
}

type MovieCache struct {
	KeyPrefix string
	TTL       time.Duration
}

type Config struct {
	HTTP       HTTPServer
	Redis      Redis
	Postgres   Postgres
	Catalog    Catalog
	Session    Session
	MovieCache MovieCache
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:       *newHTTP(),
		Redis:      *newRedis(),
		Postgres:   *newPostgres(),
		Catalog:    *newCatalog(),
		Session:    *newSession(),
		MovieCache: *newMovieCache(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *Redis {
	return &Redis{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
		DB:       getenvInt("REDIS_DB", 0),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:         getenv("DB_HOST", "localhost"),
		Port:         getenv("DB_PORT", "5432"),
		User:         getenv("DB_USER", "admin"),
		Password:     getenv("DB_PASSWORD", "shared"),
		DBName:       getenv("DB_NAME", "scenestack"),
		SSLMode:      getenv("DB_SSLMODE", "disable"),
		MaxOpenConns: getenvInt("DB_MAX_OPEN_CONNS", 10),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		APIKey:  getenv("CATALOG_API_KEY", ""),
		BaseURL: getenv("CATALOG_BASE_URL", "https://api.themoviedb.org/3"),
	}
}

func newSession() *Session {
	return &Session{
		KeyPrefix: getenv("SESSION_KEY_PREFIX", "session_cache"),
		TTL:       getenvDuration("SESSION_TTL", 24*time.Hour),
	}
}

func newMovieCache() *MovieCache {
	return &MovieCache{
		KeyPrefix: getenv("MOVIE_CACHE_KEY_PREFIX", "movie_meta"),
		TTL:       getenvDuration("MOVIE_CACHE_TTL", 30*time.Minute),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("%s %s is not a number, using default %d", logtag, key, defaultValue)
		return defaultValue
	}
	return n
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("%s %s is not a duration, using default %s", logtag, key, defaultValue)
		return defaultValue
	}
	return d
}
