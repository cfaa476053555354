package configs

import (
	"log"
	"os"
	"time"

	"foodorder/pkg/momo"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	Momo momo.Config
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using env/defaults")
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "foodorder.db"),
		Port:      getEnv("PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,

		Momo: momo.Config{
			PartnerCode: os.Getenv("MOMO_PARTNER_CODE"),
			AccessKey:   os.Getenv("MOMO_ACCESS_KEY"),
			SecretKey:   os.Getenv("MOMO_SECRET_KEY"),
			Endpoint:    getEnv("MOMO_API_ENDPOINT", "https://test-payment.momo.vn/v2/gateway/api/create"),
			RedirectURL: getEnv("MOMO_RETURN_URL", "http://localhost:8080/api/payments/callback"),
			NotifyURL:   getEnv("MOMO_NOTIFY_URL", "http://localhost:8080/api/payments/webhook"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
