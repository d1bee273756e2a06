package config

import "os"

type Config struct {
	Port            string
	GoogleTTSAPIKey string
	TTSEndpoint     string
	GeminiAPIKey    string
	GeminiModel     string
	LogFile         string
}

func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		GoogleTTSAPIKey: os.Getenv("GOOGLE_TTS_API_KEY"),
		TTSEndpoint:     getenv("TTS_ENDPOINT", ""),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getenv("GEMINI_MODEL", "gemini-2.0-flash"),
		LogFile:         getenv("LOG_FILE", ""),
	}
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
