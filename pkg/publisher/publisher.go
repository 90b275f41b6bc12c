// Package publisher は、レンダリング済みの物語成果物を出力先へ永続化するのだ。
// 出力先はローカルパスと gs:// URI の両方に対応するのだよ。
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shouni/go-ehon-kit/pkg/domain"
	"github.com/shouni/go-ehon-kit/pkg/render"
)

const (
	htmlMimeType     = "text/html; charset=utf-8"
	markdownMimeType = "text/markdown; charset=utf-8"
	jsonMimeType     = "application/json; charset=utf-8"
	svgMimeType      = "image/svg+xml"
)

// Writer は、成果物の書き込みに必要な最小のインターフェースなのだ。
// go-remote-io の OutputWriter がこれを満たすのだ。親ディレクトリの作成は
// 書き込み側の責務で、存在しなければ作られるのだよ。
type Writer interface {
	Write(ctx context.Context, path string, reader io.Reader, mimeType string) error
}

// MarpResult は Marp パブリッシュ処理で生成されたファイルの情報を保持します。
type MarpResult struct {
	MarkdownPath string   // 生成された Markdown のパス
	ImagePaths   []string // 保存されたプレースホルダー画像のパスリスト
}

// StoryPublisher は成果物の永続化を担います。
type StoryPublisher struct {
	writer Writer
}

// NewStoryPublisher は新しい StoryPublisher を生成します。
func NewStoryPublisher(writer Writer) (*StoryPublisher, error) {
	if writer == nil {
		return nil, fmt.Errorf("Writer は必須です")
	}
	return &StoryPublisher{writer: writer}, nil
}

// PublishHTML は、HTMLスライドショー文書を指定パスへ書き込むのだ。
func (p *StoryPublisher) PublishHTML(ctx context.Context, outputPath, document string) error {
	if err := p.writer.Write(ctx, outputPath, strings.NewReader(document), htmlMimeType); err != nil {
		return fmt.Errorf("HTMLファイルの書き込みに失敗しました (%s): %w", outputPath, err)
	}
	slog.InfoContext(ctx, "HTMLスライドを保存したのだ", "path", outputPath)
	return nil
}

// PublishMarp は、Marp Markdown本文と付随するプレースホルダー画像を一括で保存するのだ。
// 画像は Markdown と同じディレクトリ配下の images/ に置かれるのだ。
func (p *StoryPublisher) PublishMarp(ctx context.Context, outputPath string, doc render.MarpDocument) (MarpResult, error) {
	result := MarpResult{}

	if err := p.writer.Write(ctx, outputPath, strings.NewReader(doc.Markdown), markdownMimeType); err != nil {
		return result, fmt.Errorf("Markdownファイルの書き込みに失敗しました (%s): %w", outputPath, err)
	}
	result.MarkdownPath = outputPath

	imageDir, err := ResolveOutputPath(ResolveBaseURL(outputPath), render.ImageDirName)
	if err != nil {
		return result, fmt.Errorf("画像ディレクトリの解決に失敗しました: %w", err)
	}

	for _, asset := range doc.Assets {
		fullPath, err := ResolveOutputPath(imageDir, asset.FileName)
		if err != nil {
			return result, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
		}
		if err := p.writer.Write(ctx, fullPath, strings.NewReader(asset.SVG), svgMimeType); err != nil {
			return result, fmt.Errorf("画像の書き込みに失敗しました (%s): %w", fullPath, err)
		}
		result.ImagePaths = append(result.ImagePaths, fullPath)
	}

	slog.InfoContext(ctx, "Marp文書を保存したのだ",
		"path", result.MarkdownPath, "images", len(result.ImagePaths))
	return result, nil
}

// PublishDeck は、スライドデッキをJSONとして保存するのだ。
// CI上でデッキを検査・手直ししてから再レンダリングする用途に使うのだよ。
func (p *StoryPublisher) PublishDeck(ctx context.Context, outputPath string, deck domain.SlideDeck) error {
	data, err := json.MarshalIndent(deck, "", "  ")
	if err != nil {
		return fmt.Errorf("デッキのJSON変換に失敗しました: %w", err)
	}

	if err := p.writer.Write(ctx, outputPath, bytes.NewReader(data), jsonMimeType); err != nil {
		return fmt.Errorf("JSONファイルの書き込みに失敗しました (%s): %w", outputPath, err)
	}
	slog.InfoContext(ctx, "デッキJSONを保存したのだ", "path", outputPath)
	return nil
}
