package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-ehon-kit/internal/config"
	"github.com/shouni/go-ehon-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// marpCmd は、シードから Marp 対応の Markdown スライドを生成するのだ。
var marpCmd = &cobra.Command{
	Use:   "marp",
	Short: "シードからMarp対応のMarkdownスライドを生成するのだ。",
	Long: `題名とあらすじが書かれたシードファイルを読み込み、Marpでそのままスライドに
できるMarkdownを出力するのだ。タイトル以外の各スライドには、決定論的に生成した
SVGプレースホルダー画像が images/ 配下に添えられるのだよ。`,
	Example: "  ap-ehon-go marp -f story/seed.txt -o slides/story.md",
	RunE:    marpCommand,
}

func init() {
}

// marpCommand は、marp サブコマンドの実行ロジック本体なのだ。
func marpCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := resolveInputSource(); err != nil {
		return err
	}

	// 出力先がデフォルト（.html）のままなら、Markdown用に差し替えるのだ
	if !cmd.Flags().Changed("out") {
		opts.OutputFile = config.DefaultMarpFile
	}

	cfg := config.LoadConfig()
	cfg.Options = opts
	if cmd.Flags().Changed("model") {
		cfg.GeminiModel = opts.AIModel
	}

	slog.Info("Marpスライドの生成を開始するのだ！",
		"input", inputLabel(),
		"output", cfg.Options.OutputFile,
		"text_model", cfg.GeminiModel,
		"remote", cfg.HasAPIKey())

	if err := pipeline.ExecuteMarp(ctx, cfg); err != nil {
		return fmt.Errorf("Marp生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("完了なのだ！Marpに食わせれば発表資料のできあがりなのだよ。")
	return nil
}
