package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr      string
	APIBaseURL      string
	APITimeout      time.Duration
	NaverClientID   string
	KakaoChannelURL string
	DBPath          string
	AssetPath       string
	MatchingLive    bool
	LogLevel        string
	LogFile         string
}

// Load reads configuration from the environment. Values from a .env file in
// the working directory are applied first without overriding variables that
// are already set; a missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		APIBaseURL:      getEnv("API_BASE_URL", "http://localhost:8080"),
		APITimeout:      getDuration("API_TIMEOUT", 10*time.Second),
		NaverClientID:   getEnv("NAVER_CLIENT_ID", ""),
		KakaoChannelURL: getEnv("KAKAO_CHANNEL_URL", "https://open.kakao.com/o/s1TJTDYh"),
		DBPath:          getEnv("DB_PATH", "/data/councilweb.db"),
		AssetPath:       getEnv("ASSET_PATH", "/data/assets"),
		MatchingLive:    getBool("MATCHING_LIVE", false),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

// getBool accepts the strconv.ParseBool spellings; anything else is defaultVal.
func getBool(key string, defaultVal bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultVal
	}
	return b
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
