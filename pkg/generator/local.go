package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/shouni/go-ehon-kit/pkg/domain"
)

// DefaultSlideLimit は、1つの物語に含めるスライドの上限のデフォルト値なのだ。
// タイトルスライドと締めのスライドを含めた枚数なのだよ。
const DefaultSlideLimit = 8

// closingSlide は、ローカル生成の締めスライドの固定文言なのだ。
// 決定論性を保つため、日付などの可変要素は含めないのだ。
const closingSlide = "# おわりに\n\n読んでくれてありがとう！"

// sentenceEnders は、あらすじを文単位に区切る終端文字なのだ。
const sentenceEnders = "。！？!?."

// LocalDeckGenerator は、あらすじを固定ルールで分割してデッキを作る決定論的な生成器なのだ。
// 外部通信は一切行わず、同じシードからは常に同じデッキが得られるのだ。
//
// 分割ルール:
//   - スライド1は題名のみ
//   - あらすじを文末記号（。！？!?.）で文に分割し、1文を1スライドとする
//   - スライド上限を超える文は最後の本文スライドにまとめる
//   - 締めのスライドを末尾に加える
type LocalDeckGenerator struct {
	slideLimit int
}

// NewLocalDeckGenerator は新しい LocalDeckGenerator を生成するのだ。
// slideLimit が3未満の場合はデフォルト値に丸められるのだ。
func NewLocalDeckGenerator(slideLimit int) *LocalDeckGenerator {
	if slideLimit < 3 {
		slideLimit = DefaultSlideLimit
	}
	return &LocalDeckGenerator{slideLimit: slideLimit}
}

// Generate は、シードからスライドデッキを決定論的に生成するのだ。
func (g *LocalDeckGenerator) Generate(_ context.Context, seed domain.StorySeed) (domain.SlideDeck, error) {
	if err := seed.Validate(); err != nil {
		return domain.SlideDeck{}, fmt.Errorf("シードが不正です: %w", err)
	}

	sentences := splitSentences(seed.Synopsis)

	// タイトルと締めを除いた、本文に使える枚数なのだ
	bodyLimit := g.slideLimit - 2
	var body []string
	for i, s := range sentences {
		if i < bodyLimit {
			body = append(body, s)
			continue
		}
		// 上限を超えた文は最後の本文スライドへ折り込むのだ
		body[len(body)-1] = body[len(body)-1] + "\n" + s
	}

	slides := make([]string, 0, len(body)+2)
	slides = append(slides, "# "+seed.Title)
	for i, b := range body {
		if i == 0 {
			slides = append(slides, "# はじまり\n\n"+b)
		} else {
			slides = append(slides, b)
		}
	}
	slides = append(slides, closingSlide)

	deck := domain.SlideDeck{Title: seed.Title, Slides: slides}
	if err := deck.Validate(); err != nil {
		return domain.SlideDeck{}, fmt.Errorf("生成されたデッキが不正です: %w", err)
	}
	return deck, nil
}

// splitSentences は、テキストを文末記号で区切り、記号を残したまま文のスライスを返すのだ。
// 空白のみの断片は捨てられるのだ。
func splitSentences(text string) []string {
	var (
		sentences []string
		current   strings.Builder
	)
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for _, r := range text {
		if r == '\n' {
			flush()
			continue
		}
		current.WriteRune(r)
		if strings.ContainsRune(sentenceEnders, r) {
			flush()
		}
	}
	flush()
	return sentences
}
