package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shouni/go-ehon-kit/pkg/domain"
)

func TestMarp(t *testing.T) {
	deck := domain.SlideDeck{
		Title:  "ねこ",
		Slides: []string{"# ねこ", "# はじまり\n\n冒険する。", "# おわりに\n\nまたね"},
	}

	t.Run("Marpフロントマターが含まれるのだ", func(t *testing.T) {
		doc, err := Marp(deck)
		if err != nil {
			t.Fatalf("レンダリング失敗なのだ: %v", err)
		}
		for _, want := range []string{"marp: true", "title: ねこ", "paginate: true"} {
			if !strings.Contains(doc.Markdown, want) {
				t.Errorf("フロントマターに %q がないのだ", want)
			}
		}
	})

	t.Run("タイトルスライド以外に画像参照が埋め込まれるのだ", func(t *testing.T) {
		doc, err := Marp(deck)
		if err != nil {
			t.Fatalf("レンダリング失敗なのだ: %v", err)
		}
		if strings.Count(doc.Markdown, "![illustration]") != 2 {
			t.Errorf("画像参照の数が違うのだ:\n%s", doc.Markdown)
		}
		if len(doc.Assets) != 2 {
			t.Fatalf("期待 2アセット, 実際 %d", len(doc.Assets))
		}
		for i, asset := range doc.Assets {
			wantName := fmt.Sprintf("slide-%d.svg", i+2)
			if asset.FileName != wantName {
				t.Errorf("期待 %s, 実際 %s", wantName, asset.FileName)
			}
			if !strings.Contains(doc.Markdown, ImageDirName+"/"+asset.FileName) {
				t.Errorf("本文に %s への参照がないのだ", asset.FileName)
			}
		}
	})

	t.Run("同じデッキからは同一の文書とアセットが得られるのだ", func(t *testing.T) {
		first, err := Marp(deck)
		if err != nil {
			t.Fatalf("レンダリング失敗なのだ: %v", err)
		}
		second, err := Marp(deck)
		if err != nil {
			t.Fatalf("レンダリング失敗なのだ: %v", err)
		}
		if first.Markdown != second.Markdown {
			t.Error("Markdownが一致しないのだ")
		}
		for i := range first.Assets {
			if first.Assets[i] != second.Assets[i] {
				t.Errorf("アセット %d が一致しないのだ", i)
			}
		}
	})
}

func TestPlaceholderSVG(t *testing.T) {
	t.Run("ラベルがXMLエスケープされるのだ", func(t *testing.T) {
		svg := PlaceholderSVG(`<text> & "quotes"`, 0)
		if strings.Contains(svg, `<text> &`) {
			t.Error("生のマークアップが残っているのだ")
		}
		if !strings.Contains(svg, "&lt;text&gt;") {
			t.Errorf("エスケープ済みラベルが見つからないのだ:\n%s", svg)
		}
	})

	t.Run("背景色はスライド番号で循環するのだ", func(t *testing.T) {
		first := PlaceholderSVG("x", 1)
		again := PlaceholderSVG("x", 1+len(palette))
		if first != again {
			t.Error("同じパレット位置で結果が一致しないのだ")
		}
		other := PlaceholderSVG("x", 2)
		if first == other {
			t.Error("隣のパレット位置と同じ背景色なのだ")
		}
	})
}
