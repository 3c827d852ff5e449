package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	RedisAddr      string
	RedisPassword  string
	RabbitURL      string
	RabbitExchange string
	ConsulAddress  string
	ServiceName    string
	ServiceID      string
	ServiceAddress string
	JWTSecret      string
	JWTExpiryHours int64
	RazorpayKeyID  string
	RazorpaySecret string
	UploadDir      string
	FEAddress      string
}

var ServiceConfig *Config

func Load() *Config {
	expiryStr := getEnv("TOKEN_EXPIRY_HOURS", "1")
	expiry, err := strconv.Atoi(expiryStr)
	if err != nil || expiry <= 0 {
		log.Printf("Invalid TOKEN_EXPIRY_HOURS %q, defaulting to 1", expiryStr)
		expiry = 1
	}

	ServiceConfig = &Config{
		Port:           getEnv("PORT", "7200"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("LEARNING_SERVICE_MONGO_DB", "learning_service"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RabbitURL:      getEnv("RABBITMQ_URI", ""),
		RabbitExchange: getEnv("RABBITMQ_EXCHANGE", ""),
		ConsulAddress:  getEnv("CONSUL_ADDRESS", ""),
		ServiceName:    getEnv("LEARNING_SERVICE_NAME", "learning-service"),
		ServiceID:      getEnv("LEARNING_SERVICE_NAME", "learning-service") + "-" + getEnv("HOSTNAME", "1"),
		ServiceAddress: getEnv("LEARNING_SERVICE_ADDRESS", "learning-service"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpiryHours: int64(expiry),
		RazorpayKeyID:  getEnv("RAZORPAY_KEY_ID", ""),
		RazorpaySecret: getEnv("RAZORPAY_SECRET", ""),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		FEAddress:      getEnv("FE_ADDR", "http://localhost:3000"),
	}
	return ServiceConfig
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
