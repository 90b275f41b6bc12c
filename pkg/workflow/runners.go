package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/shouni/go-ehon-kit/internal/prompt"
	"github.com/shouni/go-ehon-kit/pkg/generator"
	"github.com/shouni/go-ehon-kit/pkg/publisher"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-gemini-client/gemini"
	"golang.org/x/time/rate"
)

const (
	defaultRateBurst       = 2
	defaultCacheExpiration = 5 * time.Minute
	cacheCleanupInterval   = 15 * time.Minute
)

// geminiTextModel は、gemini クライアントを generator.TextModel に適合させるアダプターです。
type geminiTextModel struct {
	client gemini.GenerativeModel
}

func (a *geminiTextModel) GenerateText(ctx context.Context, promptContent, model string) (string, error) {
	resp, err := a.client.GenerateContent(ctx, promptContent, model)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// BuildDeckGenerator は、スライドデッキ生成を担当する生成器を構築します。
// APIキーが設定されていればリモート生成＋ローカルフォールバック、
// なければローカル生成のみを返します。
func (m *Manager) BuildDeckGenerator() (generator.DeckGenerator, error) {
	local := generator.NewLocalDeckGenerator(m.cfg.SlideLimit)

	if m.aiClient == nil {
		return local, nil
	}

	promptTemplate := m.promptTemplate
	if promptTemplate == "" {
		promptTemplate = prompt.StoryPrompt
	}

	remote, err := generator.NewRemoteDeckGenerator(
		&geminiTextModel{client: m.aiClient},
		m.cfg.GeminiModel,
		promptTemplate,
		m.cfg.SlideLimit,
		rate.NewLimiter(rate.Every(m.cfg.RateInterval), defaultRateBurst),
		cache.New(defaultCacheExpiration, cacheCleanupInterval),
	)
	if err != nil {
		return nil, fmt.Errorf("リモート生成器の構築に失敗しました: %w", err)
	}

	return generator.NewFallbackDeckGenerator(remote, local)
}

// BuildPublisher は、成果物のパブリッシュを担当する StoryPublisher を構築します。
func (m *Manager) BuildPublisher() (*publisher.StoryPublisher, error) {
	return publisher.NewStoryPublisher(m.writer)
}
