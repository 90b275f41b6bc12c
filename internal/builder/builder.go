package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/shouni/go-ehon-kit/internal/config"
	"github.com/shouni/go-ehon-kit/internal/prompt"
	"github.com/shouni/go-ehon-kit/internal/runner"
	"github.com/shouni/go-ehon-kit/pkg/generator"
	"github.com/shouni/go-ehon-kit/pkg/publisher"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-gemini-client/gemini"
	"github.com/shouni/go-web-exact/v2/extract"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const (
	defaultGeminiTemperature = float32(0.2)
	defaultRateBurst         = 2
	defaultCacheExpiration   = 5 * time.Minute
	cacheCleanupInterval     = 15 * time.Minute
)

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// geminiTextModel は、gemini クライアントを generator.TextModel に適合させるアダプターなのだ。
type geminiTextModel struct {
	client gemini.GenerativeModel
}

// GenerateText は、プロンプトをGeminiに送信して生成テキストを返すのだ。
func (a *geminiTextModel) GenerateText(ctx context.Context, promptContent, model string) (string, error) {
	resp, err := a.client.GenerateContent(ctx, promptContent, model)
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// BuildDeckGenerator は、設定に応じたスライドデッキ生成器を構築するのだ。
// APIキーが設定されていればリモート生成＋ローカルフォールバック、
// なければ最初からローカル生成のみを返すのだよ。
func BuildDeckGenerator(appCtx *AppContext, mode string) (generator.DeckGenerator, error) {
	local := generator.NewLocalDeckGenerator(appCtx.Options.SlideLimit)

	// APIキーがない、またはクライアントの初期化に失敗している場合は
	// ローカル生成のみで進めるのだ。
	if !appCtx.Config.HasAPIKey() || appCtx.aiClient == nil {
		return local, nil
	}

	promptTemplate, err := prompt.GetPromptByMode(mode)
	if err != nil {
		return nil, err
	}

	remote, err := generator.NewRemoteDeckGenerator(
		&geminiTextModel{client: appCtx.aiClient},
		appCtx.Config.GeminiModel,
		promptTemplate,
		appCtx.Options.SlideLimit,
		rate.NewLimiter(rate.Every(config.DefaultRateLimit), defaultRateBurst),
		cache.New(defaultCacheExpiration, cacheCleanupInterval),
	)
	if err != nil {
		return nil, fmt.Errorf("リモート生成器の構築に失敗したのだ: %w", err)
	}

	return generator.NewFallbackDeckGenerator(remote, local)
}

// BuildSeedRunner は、入力ソースの読み込みとパースを担当する Runner を構築するのだ。
func BuildSeedRunner(appCtx *AppContext) (*runner.SeedRunner, error) {
	extractor, err := extract.NewExtractor(appCtx.httpClient)
	if err != nil {
		return nil, fmt.Errorf("extractor の初期化に失敗しました: %w", err)
	}

	return runner.NewSeedRunner(appCtx.Options, extractor, appCtx.Reader), nil
}

// BuildPublisher は、成果物の保存を担当する StoryPublisher を構築するのだ。
func BuildPublisher(appCtx *AppContext) (*publisher.StoryPublisher, error) {
	pub, err := publisher.NewStoryPublisher(appCtx.Writer)
	if err != nil {
		return nil, fmt.Errorf("パブリッシャーの初期化に失敗しました: %w", err)
	}
	return pub, nil
}
