package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"

	"github.com/shouni/go-ehon-kit/pkg/generator"
)

// デフォルト値の定義なのだ
const (
	DefaultModel       = "gemini-3-flash-preview"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultSlideLimit  = generator.DefaultSlideLimit
	DefaultRateLimit   = 10 * time.Second
	DefaultHTMLFile    = "output/story.html" // htmlコマンドのデフォルト保存先なのだ
	DefaultMarpFile    = "output/story.md"   // marpコマンドのデフォルト保存先なのだ
	DefaultDeckFile    = "output/deck.json"  // deckコマンドのデフォルト保存先なのだ
)

// Config はアプリケーション全体の環境設定（APIキーなど）を保持する構造体なのだ。
// 環境変数はプロセス起動時に一度だけ読み込まれ、以後変更されないのだよ。
type Config struct {
	GeminiAPIKey string
	GeminiModel  string

	Options GenerateOptions
}

// HasAPIKey は、リモート生成を試みるべきかどうかを返すのだ。
// キーの不在はエラーではなく、ローカル生成モードへの切り替えを意味するのだ。
func (c *Config) HasAPIKey() bool {
	return c.GeminiAPIKey != ""
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		GeminiAPIKey: envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:  envutil.GetEnv("GEMINI_MODEL", DefaultModel),
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	InputURL  string // --input-url
	InputFile string // --input（'-'で標準入力）

	// 生成結果の出力設定
	OutputFile string // --out

	// AI挙動設定
	AIModel    string // --model: テキスト生成用のGeminiモデル
	SlideLimit int    // --slide-limit: 1物語あたりのスライド上限

	// 実行制御
	HTTPTimeout time.Duration // --http-timeout
}
