package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-ehon-kit/internal/config"
	"github.com/shouni/go-ehon-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// htmlCmd は、シードから自己完結型のHTMLスライドショーを生成するのだ。
// これがこのツールの主役のコマンドなのだよ。
var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "シードからHTML絵本スライドを生成して保存するのだ。",
	Long: `題名とあらすじが書かれたシードファイルを読み込み、スライド形式の絵本を
1枚の自己完結型HTMLとして出力するのだ。GEMINI_API_KEY が設定されていれば
Geminiで物語をふくらませ、なければ決定論的なローカル分割で生成するのだよ。`,
	Example: "  ap-ehon-go html -f story/seed.txt -o docs/index.html",
	RunE:    htmlCommand,
}

func init() {
}

// htmlCommand は、html サブコマンドの実行ロジック本体なのだ。
func htmlCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 入力ソースの必須チェック
	if err := resolveInputSource(); err != nil {
		return err
	}

	// 2. 設定のロード
	cfg := config.LoadConfig()
	cfg.Options = opts
	if cmd.Flags().Changed("model") {
		cfg.GeminiModel = opts.AIModel
	}

	slog.Info("HTML絵本の生成を開始するのだ！",
		"input", inputLabel(),
		"output", cfg.Options.OutputFile,
		"text_model", cfg.GeminiModel,
		"remote", cfg.HasAPIKey())

	// 3. パイプライン実行
	if err := pipeline.ExecuteHTML(ctx, cfg); err != nil {
		return fmt.Errorf("HTML生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("完了なのだ！ブラウザで開けばそのまま読めるのだよ。")
	return nil
}

// resolveInputSource は、入力ソースの指定を検証して正規化するのだ。
// パイプ入力のみが与えられた場合は標準入力を入力ファイルとして扱うのだ。
func resolveInputSource() error {
	if opts.InputURL == "" && opts.InputFile == "" {
		if !isStdin() {
			return fmt.Errorf("シード（--input または --input-url）を指定してほしいのだ")
		}
		opts.InputFile = "-"
	}
	return nil
}

// inputLabel は、ログ表示用の入力ソース名を返すのだ。
func inputLabel() string {
	if opts.InputURL != "" {
		return opts.InputURL
	}
	if opts.InputFile == "-" {
		return "stdin"
	}
	return opts.InputFile
}
