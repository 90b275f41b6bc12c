package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/shouni/go-ehon-kit/internal/config"
	"github.com/shouni/go-ehon-kit/pkg/domain"
	"github.com/shouni/go-ehon-kit/pkg/parser"

	"github.com/shouni/go-remote-io/remoteio"
	"github.com/shouni/go-web-exact/v2/extract"
)

// stdinMarker は、標準入力からシードを読むことを示す入力パスなのだ。
const stdinMarker = "-"

// SeedRunner は、入力ソース（URL・ファイル・標準入力）からシードを読み込み、
// StorySeed にパースする核となる構造体なのだ。
type SeedRunner struct {
	opts      config.GenerateOptions // 実行時のコマンドライン引数や設定
	extractor *extract.Extractor     // Webサイトから本文を抽出するエクストラクター
	reader    remoteio.InputReader   // ローカルやGCSのファイルを読み込むリーダー
}

// NewSeedRunner は、SeedRunnerの新しいインスタンスを生成して返すのだ。
func NewSeedRunner(
	opts config.GenerateOptions,
	ext *extract.Extractor,
	r remoteio.InputReader,
) *SeedRunner {
	return &SeedRunner{
		opts:      opts,
		extractor: ext,
		reader:    r,
	}
}

// Run は、入力ソースの読み込みとシードのパースを一気に行うのだ。
// 形式不正は parser.ErrInputFormat を包んだエラーとして返るのだ。
func (sr *SeedRunner) Run(ctx context.Context) (domain.StorySeed, error) {
	// URLが指定されている場合は、Webスクレイピングを実行するのだ
	if sr.opts.InputURL != "" {
		text, _, err := sr.extractor.FetchAndExtractText(ctx, sr.opts.InputURL)
		if err != nil {
			return domain.StorySeed{}, fmt.Errorf("シードURLの取得に失敗しました (%s): %w", sr.opts.InputURL, err)
		}
		return parser.ParseSeed([]byte(text))
	}

	// '-' が指定されている場合は、標準入力から読み込むのだ
	if sr.opts.InputFile == stdinMarker {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return domain.StorySeed{}, fmt.Errorf("標準入力の読み込みに失敗しました: %w", err)
		}
		return parser.ParseSeed(raw)
	}

	// ファイルパスの場合は、パーサーに読み込みごと任せるのだ（GCS等も対応！）
	return parser.NewStorySeedParser(sr.reader).ParseFromPath(ctx, sr.opts.InputFile)
}
