package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-ehon-kit/internal/config"
	"github.com/shouni/go-ehon-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// deckCmd は、スライドデッキの生成（JSON出力）のみを実行するのだ。
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "スライドデッキ（JSON）のみを生成して保存するのだ。",
	Long: `シードを解析してスライドテキストの列をJSON形式で出力するのだ。
レンダリングは行わないのだよ。CI上でデッキを検査したり、手直ししてから
レンダリングし直したりする用途に使うのだ。`,
	Example: "  ap-ehon-go deck -f story/seed.txt -o output/deck.json",
	RunE:    deckCommand,
}

func init() {
}

// deckCommand は、deck サブコマンドの実行ロジック本体なのだ。
func deckCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := resolveInputSource(); err != nil {
		return err
	}

	// --out がユーザーによって指定されなかった場合、
	// deckコマンド固有のデフォルト値を設定する
	if !cmd.Flags().Changed("out") {
		opts.OutputFile = config.DefaultDeckFile
	}

	cfg := config.LoadConfig()
	cfg.Options = opts
	if cmd.Flags().Changed("model") {
		cfg.GeminiModel = opts.AIModel
	}

	slog.Info("デッキ生成モードを起動するのだ！",
		"input", inputLabel(),
		"output", cfg.Options.OutputFile,
		"text_model", cfg.GeminiModel)

	if err := pipeline.ExecuteDeckOnly(ctx, cfg); err != nil {
		return fmt.Errorf("デッキ生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("デッキ（JSON）の生成が完了したのだ！", "output_file", opts.OutputFile)
	return nil
}
