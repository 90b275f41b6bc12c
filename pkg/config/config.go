package config

import (
	"time"
)

// デフォルト値の定義
const (
	DefaultGeminiModel  = "gemini-3-flash-preview"
	DefaultSlideLimit   = 8
	DefaultRateInterval = 10 * time.Second
	DefaultTimeout      = 30 * time.Second
)

// Config は Go Ehon Kit の各 Runner を動作させるための基本設定です。
// CLIを介さずライブラリとして組み込む場合はこちらを使います。
type Config struct {
	// --- AI Model Settings ---
	GeminiModel string

	// --- Google AI (Gemini API) Settings ---
	// 空の場合、リモート生成は行われずローカル生成のみになります。
	GeminiAPIKey string

	// --- Generation Settings ---
	SlideLimit   int
	RateInterval time.Duration

	// --- Timeout ---
	RequestTimeout time.Duration
}

// DefaultConfig は推奨されるデフォルト設定を返すヘルパー関数です。
func DefaultConfig() Config {
	return Config{
		GeminiModel:    DefaultGeminiModel,
		SlideLimit:     DefaultSlideLimit,
		RateInterval:   DefaultRateInterval,
		RequestTimeout: DefaultTimeout,
	}
}
