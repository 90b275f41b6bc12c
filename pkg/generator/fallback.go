package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-ehon-kit/pkg/domain"
)

// FallbackDeckGenerator は、リモート生成を一度だけ試み、
// 失敗したらローカル生成に切り替える生成器なのだ。
// リモートの失敗は警告ログに残すだけで、呼び出し元には決して伝播しないのだ。
type FallbackDeckGenerator struct {
	remote DeckGenerator
	local  DeckGenerator
}

// NewFallbackDeckGenerator は新しい FallbackDeckGenerator を生成するのだ。
func NewFallbackDeckGenerator(remote, local DeckGenerator) (*FallbackDeckGenerator, error) {
	if remote == nil {
		return nil, fmt.Errorf("リモート生成器は必須です")
	}
	if local == nil {
		return nil, fmt.Errorf("ローカル生成器は必須です")
	}
	return &FallbackDeckGenerator{remote: remote, local: local}, nil
}

// Generate は、まずリモート生成を試み、エラーならローカル生成にフォールバックするのだ。
func (g *FallbackDeckGenerator) Generate(ctx context.Context, seed domain.StorySeed) (domain.SlideDeck, error) {
	deck, err := g.remote.Generate(ctx, seed)
	if err == nil {
		slog.InfoContext(ctx, "リモート生成に成功したのだ", "slides", len(deck.Slides))
		return deck, nil
	}

	slog.WarnContext(ctx, "リモート生成に失敗したので、ローカル生成に切り替えるのだ", "error", err)
	return g.local.Generate(ctx, seed)
}
