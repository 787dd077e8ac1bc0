package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// =======================
// APP CONFIG
// =======================
type AppConfig struct {
	Env            string
	Port           string
	AllowedOrigins []string

	Institution    string // kop laporan & metadata dokumen
	Program        string
	Badge          string // teks logo di kop PDF
	ReportPrefix   string // prefix nama file export
	Currency       string
	ReportPageSize int
	Timezone       string
}

func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Judul dokumen export, mis. "PMICS Program - Financial Report".
func (c AppConfig) ReportTitle() string {
	return strings.TrimSpace(c.Program) + " Program - Financial Report"
}

func Load() AppConfig {
	origins := []string{}
	for _, o := range strings.Split(GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	cfg := AppConfig{
		Env:            GetEnv("APP_ENV", "development"),
		Port:           GetEnv("PORT", "3000"),
		AllowedOrigins: origins,
		Institution:    GetEnv("REPORT_INSTITUTION", "University of Dhaka"),
		Program:        GetEnv("REPORT_PROGRAM", "PMICS"),
		Badge:          GetEnv("REPORT_BADGE", "DU"),
		ReportPrefix:   GetEnv("REPORT_FILE_PREFIX", "PMICS_Financial_Report"),
		Currency:       GetEnv("REPORT_CURRENCY", "BDT"),
		ReportPageSize: getEnvInt("REPORT_PAGE_SIZE", 10),
		Timezone:       GetEnv("APP_TIMEZONE", "Asia/Dhaka"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	return cfg
}
