package cmd

import (
	"os"

	"github.com/shouni/go-ehon-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は、全サブコマンドで共有される実行時オプションなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.InputURL, "input-url", "u", "", "Webページからシードを取得するためのURLなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.InputFile, "input", "f", "", "シードファイルのパス（'-'で標準入力なのだ）。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "out", "o", config.DefaultHTMLFile, "保存パス（ローカル or gs://...）なのだ。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "使用する Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().IntVarP(&opts.SlideLimit, "slide-limit", "p", config.DefaultSlideLimit, "1つの物語に含めるスライドの上限なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
}

// preRunAppE は、コマンド実行前のフックなのだ。
// APIキーの不在はエラーではなく、ローカル生成モードへの切り替えを意味するだけなので、
// ここでは何も検証しないのだ。モード切り替えの通知はパイプライン側が一度だけ出すのだよ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"ap-ehon-go",
		addAppFlags,
		preRunAppE,
		htmlCmd,
		marpCmd,
		deckCmd,
	)
}

// isStdin は、標準入力にパイプ等でデータが流れ込んでいるかを判定するのだ。
func isStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
