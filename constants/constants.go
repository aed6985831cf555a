package constants

import (
	"os"
	"strconv"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetDataPath is the store JSON file. Empty means the built-in defaults.
func GetDataPath() string {
	return os.Getenv("FRETDEX_DATA_PATH")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("FRETDEX_PORT"))
	if err != nil || port <= 0 {
		return DefaultPort
	}
	return port
}

func GetLogLevel() string {
	return getEnv("FRETDEX_LOG_LEVEL", "info")
}

func GetDynamoEndpoint() string {
	return getEnv("DYNAMODB_ENDPOINT", "http://localhost:8000")
}

func GetDynamoRegion() string {
	return getEnv("DYNAMODB_REGION", "localhost")
}

func GetDynamoTable() string {
	return getEnv("DYNAMODB_TABLE", "fretdex-store")
}

const DefaultPort = 8080

// how often serve checks the data file for changes
const WatchIntervalMillis = 1000

const ReloadDebounceMillis = 500
