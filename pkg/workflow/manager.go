// Package workflow は、go-ehon-kit をライブラリとして組み込むための
// ファサードを提供します。CLI（cmd パッケージ）を介さずに、
// シード読み込み・デッキ生成・パブリッシュの各 Runner を構築できます。
package workflow

import (
	"context"
	"fmt"

	"github.com/shouni/go-ehon-kit/pkg/config"

	"github.com/shouni/go-gemini-client/gemini"
	"github.com/shouni/go-http-kit/httpkit"
	"github.com/shouni/go-remote-io/remoteio"
	"google.golang.org/genai"
)

const defaultGeminiTemperature = float32(0.2)

// Manager は、ワークフローの各工程を担う Runner 群を構築・管理します。
type Manager struct {
	cfg            config.Config
	httpClient     httpkit.ClientInterface
	reader         remoteio.InputReader
	writer         remoteio.OutputWriter
	aiClient       gemini.GenerativeModel
	promptTemplate string
}

// New は、設定と依存関係を基に新しい Manager を初期化します。
// APIキーが設定されていない場合、AIクライアントは作られず、
// 構築される生成器はローカル生成のみになります。
func New(ctx context.Context, args ManagerArgs) (*Manager, error) {
	if args.HTTPClient == nil {
		return nil, fmt.Errorf("httpClient は必須です")
	}
	if args.Reader == nil {
		return nil, fmt.Errorf("InputReader は必須です")
	}
	if args.Writer == nil {
		return nil, fmt.Errorf("OutputWriter は必須です")
	}

	var aiClient gemini.GenerativeModel
	if args.Config.GeminiAPIKey != "" {
		var err error
		aiClient, err = initializeAIClient(ctx, args.Config.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
	}

	return &Manager{
		cfg:            args.Config,
		httpClient:     args.HTTPClient,
		reader:         args.Reader,
		writer:         args.Writer,
		aiClient:       aiClient,
		promptTemplate: args.PromptTemplate,
	}, nil
}

// initializeAIClient は gemini クライアントを初期化します。
func initializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
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
