package parser

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/shouni/go-ehon-kit/pkg/domain"
	"github.com/shouni/go-remote-io/remoteio"
)

// Parser はシードを解析するためのインターフェースを定義します。
type Parser interface {
	ParseFromPath(ctx context.Context, fullPath string) (domain.StorySeed, error)
}

// StorySeedParser は、テキスト形式のシードファイルを解析する構造体です。
type StorySeedParser struct {
	reader remoteio.InputReader
}

// NewStorySeedParser は新しい StorySeedParser インスタンスを生成します。
func NewStorySeedParser(r remoteio.InputReader) *StorySeedParser {
	return &StorySeedParser{reader: r}
}

// ParseFromPath は指定された GCS URIやローカルファイルパスなどから
// シードを読み込み、解析して domain.StorySeed を返します。
func (p *StorySeedParser) ParseFromPath(ctx context.Context, seedFile string) (domain.StorySeed, error) {
	slog.InfoContext(ctx, "シードファイルを読み込んでいます", "path", seedFile)
	rc, err := p.reader.Open(ctx, seedFile)
	if err != nil {
		return domain.StorySeed{}, fmt.Errorf("シードファイルのオープンに失敗しました (%s): %w", seedFile, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return domain.StorySeed{}, fmt.Errorf("シードファイルの読み込みに失敗しました (%s): %w", seedFile, err)
	}

	return ParseSeed(raw)
}
