package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	ServerPort        string        `env:"SERVER_PORT" env-default:"8080"`
	TesseractDataPath string        `env:"TESSDATA_PREFIX" env-default:"/usr/share/tesseract-ocr/5/tessdata/"`
	PaddleAPIURL      string        `env:"PADDLEOCR_API_URL" env-default:"http://paddleocr:8866/predict/ocr_system"`
	PaddleTimeout     time.Duration `env:"PADDLEOCR_TIMEOUT" env-default:"60s"`
	HistoryFile       string        `env:"HISTORY_FILE" env-default:"data/payslip_history.json"`
	HistoryMaxSize    int           `env:"HISTORY_MAX_SIZE" env-default:"50"`
	MaxFileSize       int64         `env:"MAX_FILE_SIZE" env-default:"10485760"` // 10 MB
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment config: %w", err)
	}
	return &cfg, nil
}
