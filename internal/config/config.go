package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                    string
	FirestoreProjectID      string
	FirebaseCredentialsFile string
	OperatorWorkers         int
	OperatorQueueSize       int
	StoreTimeout            time.Duration
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	env := Config{
		Port:              "9446",
		OperatorWorkers:   2,
		OperatorQueueSize: 1000,
		StoreTimeout:      15 * time.Second,
	}

	if v := os.Getenv("PORT"); v != "" {
		env.Port = v
	}

	env.FirestoreProjectID = os.Getenv("FIRESTORE_PROJECT_ID")
	env.FirebaseCredentialsFile = os.Getenv("FIREBASE_CREDENTIALS_FILE")

	if v := os.Getenv("OPERATOR_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = n
	}

	if v := os.Getenv("OPERATOR_QUEUE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.OperatorQueueSize = n
	}

	if v := os.Getenv("STORE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, err
		}
		env.StoreTimeout = d
	}

	return &env, nil
}
