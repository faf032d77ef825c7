package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	BucketName     string

	MaxFileSizeBytes int64
	MaxFilesCount    int
	PresignedURLTTL  time.Duration

	JWTSecret string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	viper.SetDefault("MAX_FILE_SIZE_BYTES", 10*1024*1024)
	viper.SetDefault("MAX_FILES_COUNT", 10)
	viper.SetDefault("PRESIGNED_URL_TTL_SECONDS", 3600)

	required := []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"BUCKET_NAME",
	}
	for _, key := range required {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),

		MinioEndpoint:  viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey: viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey: viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:    viper.GetBool("MINIO_USE_SSL"),
		BucketName:     viper.GetString("BUCKET_NAME"),

		MaxFileSizeBytes: viper.GetInt64("MAX_FILE_SIZE_BYTES"),
		MaxFilesCount:    viper.GetInt("MAX_FILES_COUNT"),
		PresignedURLTTL:  time.Duration(viper.GetInt("PRESIGNED_URL_TTL_SECONDS")) * time.Second,

		JWTSecret: viper.GetString("JWT_SECRET"),
	}, nil
}
