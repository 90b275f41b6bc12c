package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-ehon-kit/internal/builder"
	"github.com/shouni/go-ehon-kit/internal/config"
	"github.com/shouni/go-ehon-kit/internal/prompt"
	"github.com/shouni/go-ehon-kit/pkg/domain"
	"github.com/shouni/go-ehon-kit/pkg/render"

	"github.com/shouni/go-gemini-client/gemini"
	"github.com/shouni/go-http-kit/httpkit"
	gcsfactory "github.com/shouni/go-remote-io/remoteio/gcs"
)

// ExecuteHTML は、シードからHTMLスライドショーを生成して保存するのだ。
// パース → デッキ生成（リモート or ローカル） → レンダリング → 書き出し、の一本道なのだよ。
func ExecuteHTML(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	deck, err := buildDeck(ctx, appCtx, prompt.ModeStory)
	if err != nil {
		return err
	}

	document, err := render.HTML(deck)
	if err != nil {
		return fmt.Errorf("HTMLのレンダリングに失敗したのだ: %w", err)
	}

	pub, err := builder.BuildPublisher(appCtx)
	if err != nil {
		return err
	}
	if err := pub.PublishHTML(ctx, cfg.Options.OutputFile, document); err != nil {
		return err
	}

	slog.Info("HTMLスライドの生成が完了したのだ！",
		"path", cfg.Options.OutputFile, "slides", len(deck.Slides))
	return nil
}

// ExecuteMarp は、シードから Marp Markdown とプレースホルダー画像を生成して保存するのだ。
func ExecuteMarp(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	deck, err := buildDeck(ctx, appCtx, prompt.ModeMarp)
	if err != nil {
		return err
	}

	doc, err := render.Marp(deck)
	if err != nil {
		return fmt.Errorf("Marp文書のレンダリングに失敗したのだ: %w", err)
	}

	pub, err := builder.BuildPublisher(appCtx)
	if err != nil {
		return err
	}
	result, err := pub.PublishMarp(ctx, cfg.Options.OutputFile, doc)
	if err != nil {
		return err
	}

	slog.Info("Marp文書の生成が完了したのだ！",
		"path", result.MarkdownPath, "images", len(result.ImagePaths))
	return nil
}

// ExecuteDeckOnly は、シードからスライドデッキ（JSON）のみを生成して保存するのだ。
// レンダリングは行わないのだよ。
func ExecuteDeckOnly(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	deck, err := buildDeck(ctx, appCtx, prompt.ModeStory)
	if err != nil {
		return err
	}

	pub, err := builder.BuildPublisher(appCtx)
	if err != nil {
		return err
	}
	if err := pub.PublishDeck(ctx, cfg.Options.OutputFile, deck); err != nil {
		return err
	}

	slog.Info("デッキJSONの生成が完了したのだ！",
		"path", cfg.Options.OutputFile, "slides", len(deck.Slides))
	return nil
}

// buildDeck は、シードの読み込みからデッキ生成までの共通工程を実行するのだ。
func buildDeck(ctx context.Context, appCtx *builder.AppContext, mode string) (domain.SlideDeck, error) {
	seedRunner, err := builder.BuildSeedRunner(appCtx)
	if err != nil {
		return domain.SlideDeck{}, fmt.Errorf("SeedRunnerの構築に失敗したのだ: %w", err)
	}

	seed, err := seedRunner.Run(ctx)
	if err != nil {
		return domain.SlideDeck{}, fmt.Errorf("シードの読み込みに失敗したのだ: %w", err)
	}

	deckGen, err := builder.BuildDeckGenerator(appCtx, mode)
	if err != nil {
		return domain.SlideDeck{}, fmt.Errorf("デッキ生成器の構築に失敗したのだ: %w", err)
	}

	deck, err := deckGen.Generate(ctx, seed)
	if err != nil {
		return domain.SlideDeck{}, fmt.Errorf("デッキの生成に失敗したのだ: %w", err)
	}
	return deck, nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
// APIキーが未設定の場合、AIクライアントは作らずローカル生成のみで動くのだよ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	timeout := cfg.Options.HTTPTimeout
	if timeout <= 0 {
		timeout = config.DefaultHTTPTimeout
	}
	httpClient := httpkit.New(timeout)

	var aiClient gemini.GenerativeModel
	if cfg.HasAPIKey() {
		var err error
		aiClient, err = builder.InitializeAIClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			// クライアントの初期化失敗もリモート側の失敗の一種なのだ。
			// 実行は中断せず、ローカル生成に切り替えるのだよ。
			slog.WarnContext(ctx, "AIクライアントの初期化に失敗したので、ローカル生成に切り替えるのだ", "error", err)
			aiClient = nil
		}
	} else {
		slog.InfoContext(ctx, "GEMINI_API_KEY が未設定なので、ローカル生成モードで動くのだ")
	}

	gcsFactory, err := gcsfactory.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.InputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.OutputWriter()
	if err != nil {
		return nil, err
	}

	appCtx := builder.NewAppContext(cfg, httpClient, aiClient, reader, writer)
	return &appCtx, nil
}
