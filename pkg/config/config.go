package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/shouni/gemini-image-gen/pkg/domain"
)

// 環境変数のキー。
const (
	EnvAPIKey     = "GEMINI_API_KEY"
	EnvOutputDir  = "IMAGEGEN_OUTPUT_DIR"
	EnvModel      = "IMAGEGEN_MODEL"
	EnvStylesFile = "IMAGEGEN_STYLES_FILE"
)

// DefaultOutputDir は出力先の既定値です。
const DefaultOutputDir = "output"

// Config は起動時に環境から読み込む設定値です。
type Config struct {
	APIKey     string
	OutputDir  string
	Model      string
	StylesFile string // 任意。YAML スタイル定義ファイル
}

// Load は .env（存在すれば）と環境変数から設定を構築します。
// API キーの欠落は起動時致命エラーで、ネットワーク呼び出し前に失敗します。
func Load() (*Config, error) {
	// .env はあれば読む。無くてもエラーにしない。
	_ = godotenv.Load()

	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s が設定されていません (.env または環境変数で指定してください)", EnvAPIKey)
	}

	outputDir := os.Getenv(EnvOutputDir)
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	model := os.Getenv(EnvModel)
	if model == "" {
		model = domain.DefaultModel
	} else if !domain.IsKnownModel(model) {
		return nil, fmt.Errorf("%s が未知のモデルです: %s (選択肢: %v)", EnvModel, model, domain.Models())
	}

	return &Config{
		APIKey:     apiKey,
		OutputDir:  outputDir,
		Model:      model,
		StylesFile: os.Getenv(EnvStylesFile),
	}, nil
}
