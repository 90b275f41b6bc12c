package generator

import (
	"context"

	"github.com/shouni/go-ehon-kit/pkg/domain"
)

// DeckGenerator は、物語のシードからスライドデッキを生成する共通インターフェースなのだ。
// リモート生成（Gemini）とローカル生成（決定論的分割）の両方がこれを実装するのだ。
type DeckGenerator interface {
	// Generate は、シードからスライドデッキを一度だけ生成するのだ。
	Generate(ctx context.Context, seed domain.StorySeed) (domain.SlideDeck, error)
}

// TextModel は、リモート生成が必要とする生成AIクライアントの最小インターフェースなのだ。
// go-gemini-client のクライアントをアダプター経由でこの形に合わせて注入するのだよ。
type TextModel interface {
	// GenerateText は、プロンプトをモデルに送信して生成テキストを返すのだ。
	GenerateText(ctx context.Context, prompt, model string) (string, error)
}
