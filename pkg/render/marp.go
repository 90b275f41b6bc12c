package render

import (
	"fmt"
	"strings"

	"github.com/shouni/go-ehon-kit/pkg/domain"
)

const (
	// ImageDirName は、Marp文書から参照するプレースホルダー画像のディレクトリ名なのだ。
	ImageDirName = "images"

	// labelRuneLimit は、プレースホルダー画像に描くラベルの最大文字数なのだ。
	labelRuneLimit = 40
)

// SlideAsset は、Marp出力に付随して保存されるプレースホルダー画像1枚分の情報なのだ。
type SlideAsset struct {
	FileName string // 例: slide-2.svg
	SVG      string // 生成済みのSVG本体
}

// MarpDocument は、Marp Markdown本文と、併せて保存すべき画像アセットの組なのだ。
type MarpDocument struct {
	Markdown string
	Assets   []SlideAsset
}

// Marp は、スライドデッキから Marp 対応の Markdown 文書を生成するのだ。
// 先頭スライド（タイトル）以外の各スライドには、決定論的に生成した
// SVGプレースホルダー画像への参照が先頭に埋め込まれるのだ。
// レンダリングは純関数で、副作用（ファイル書き込み）は publisher の責務なのだよ。
func Marp(deck domain.SlideDeck) (MarpDocument, error) {
	if err := deck.Validate(); err != nil {
		return MarpDocument{}, fmt.Errorf("デッキが不正です: %w", err)
	}

	doc := MarpDocument{}

	var sb strings.Builder
	sb.WriteString("---\n")
	sb.WriteString("marp: true\n")
	sb.WriteString(fmt.Sprintf("title: %s\n", deck.Title))
	sb.WriteString("paginate: true\n")
	sb.WriteString("theme: default\n")
	sb.WriteString("---\n\n")

	for i, slide := range deck.Slides {
		if i > 0 {
			sb.WriteString("\n---\n\n")
		}
		if i > 0 {
			label := domain.FirstLine(slide, labelRuneLimit)
			if label == "" {
				label = fmt.Sprintf("Slide %d", i+1)
			}
			asset := SlideAsset{
				FileName: fmt.Sprintf("slide-%d.svg", i+1),
				SVG:      PlaceholderSVG(label, i),
			}
			doc.Assets = append(doc.Assets, asset)
			sb.WriteString(fmt.Sprintf("![illustration](%s/%s)\n\n", ImageDirName, asset.FileName))
		}
		sb.WriteString(strings.TrimSpace(slide))
		sb.WriteString("\n")
	}

	doc.Markdown = sb.String()
	return doc, nil
}
