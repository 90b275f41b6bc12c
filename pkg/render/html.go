// Package render は、スライドデッキを配布可能な単一ドキュメントへ変換する純関数群なのだ。
// HTMLスライドショーと Marp Markdown の2つの出力形式をサポートするのだよ。
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/shouni/go-ehon-kit/pkg/domain"
)

//go:embed templates/slideshow.html.tmpl
var slideshowTemplate string

// slideshowTmpl はパッケージ初期化時に一度だけパースされるのだ。
var slideshowTmpl = template.Must(template.New("slideshow").Parse(slideshowTemplate))

// slideView は、テンプレートに渡す1枚分のスライド表示データなのだ。
type slideView struct {
	Index   int
	Content template.HTML
}

// documentView は、スライドショーテンプレート全体のデータなのだ。
type documentView struct {
	Title  string
	Slides []slideView
	Total  int
}

// HTML は、スライドデッキから自己完結型のHTMLスライドショーを生成するのだ。
// 外部アセットへの依存はなく、同じデッキからはバイト単位で同一の文書が得られるのだ。
// スライド本文はすべてHTMLエスケープされ、物語の内容がマークアップとして
// 解釈されることはないのだよ。
func HTML(deck domain.SlideDeck) (string, error) {
	if err := deck.Validate(); err != nil {
		return "", fmt.Errorf("デッキが不正です: %w", err)
	}

	view := documentView{
		Title: deck.Title,
		Total: len(deck.Slides),
	}
	for i, slide := range deck.Slides {
		view.Slides = append(view.Slides, slideView{
			Index:   i + 1,
			Content: slideContentHTML(slide),
		})
	}

	var buf bytes.Buffer
	if err := slideshowTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("HTMLテンプレートの実行に失敗しました: %w", err)
	}
	return buf.String(), nil
}

// slideContentHTML は、1枚分のスライドテキストを安全なHTML片に変換するのだ。
//
// 変換ルール:
//   - 「# 」で始まる行は h1、「## 」で始まる行は h2 の見出しになる
//   - それ以外の連続する行は1つの段落 (p) にまとめ、行間は <br> で区切る
//   - 空行は段落の区切りになる
//
// 各行のテキストはエスケープ済みで、HTML特殊文字は無害化されるのだ。
func slideContentHTML(slide string) template.HTML {
	var (
		sb        strings.Builder
		paragraph []string
	)
	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		sb.WriteString("<p>")
		sb.WriteString(strings.Join(paragraph, "<br>"))
		sb.WriteString("</p>")
		paragraph = nil
	}

	for _, ln := range strings.Split(slide, "\n") {
		line := strings.TrimSpace(ln)
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "## "):
			flush()
			sb.WriteString("<h2>")
			sb.WriteString(template.HTMLEscapeString(strings.TrimSpace(line[3:])))
			sb.WriteString("</h2>")
		case strings.HasPrefix(line, "# "):
			flush()
			sb.WriteString("<h1>")
			sb.WriteString(template.HTMLEscapeString(strings.TrimSpace(line[2:])))
			sb.WriteString("</h1>")
		default:
			paragraph = append(paragraph, template.HTMLEscapeString(line))
		}
	}
	flush()

	return template.HTML(sb.String())
}
