package domain

import (
	"errors"
	"strings"
)

// StorySeed は、絵本の元となる「題名」と「あらすじ」を保持する構造体なのだ。
// シードファイルのパース結果として生成され、スライド生成が終わったら破棄されるのだ。
type StorySeed struct {
	Title    string `json:"title"`
	Synopsis string `json:"synopsis"`
}

// Validate は、題名とあらすじの両方が空でないことを確認するのだ。
func (s StorySeed) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return errors.New("題名が空です")
	}
	if strings.TrimSpace(s.Synopsis) == "" {
		return errors.New("あらすじが空です")
	}
	return nil
}

// SlideDeck は、1つの物語を構成するスライドテキストの順序付き列なのだ。
// 生成後は不変として扱い、レンダラーにそのまま渡すのだよ。
type SlideDeck struct {
	Title  string   `json:"title"`
	Slides []string `json:"slides"`
}

// Validate は、デッキが最低1枚のスライドを持ち、先頭スライドが空でないことを確認するのだ。
func (d SlideDeck) Validate() error {
	if len(d.Slides) == 0 {
		return errors.New("スライドが1枚もありません")
	}
	if strings.TrimSpace(d.Slides[0]) == "" {
		return errors.New("先頭のスライドが空です")
	}
	return nil
}

// FirstLine は、スライドテキストの先頭の空でない行を返すのだ。
// Markdown見出し記号 (#) は取り除かれるのだ。SVGプレースホルダーのラベル等に使うのだよ。
func FirstLine(slide string, limit int) string {
	for _, ln := range strings.Split(slide, "\n") {
		s := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(ln), "#"))
		if s == "" {
			continue
		}
		runes := []rune(s)
		if limit > 0 && len(runes) > limit {
			return string(runes[:limit])
		}
		return s
	}
	return ""
}
