package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/shouni/go-ehon-kit/pkg/config"

	"github.com/shouni/go-http-kit/httpkit"
)

func TestNew_Validation(t *testing.T) {
	ctx := context.Background()
	httpClient := httpkit.New(5 * time.Second)

	t.Run("httpClientなしでは構築できないのだ", func(t *testing.T) {
		_, err := New(ctx, ManagerArgs{Config: config.DefaultConfig()})
		if err == nil {
			t.Error("httpClientなしでエラーが発生しませんでした")
		}
	})

	t.Run("Readerなしでは構築できないのだ", func(t *testing.T) {
		_, err := New(ctx, ManagerArgs{
			Config:     config.DefaultConfig(),
			HTTPClient: httpClient,
		})
		if err == nil {
			t.Error("Readerなしでエラーが発生しませんでした")
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Run("デフォルト設定にAPIキーは含まれないのだ", func(t *testing.T) {
		cfg := config.DefaultConfig()
		if cfg.GeminiAPIKey != "" {
			t.Error("デフォルト設定にAPIキーが入っているのだ")
		}
		if cfg.GeminiModel == "" || cfg.SlideLimit < 3 {
			t.Errorf("デフォルト値が不正なのだ: %+v", cfg)
		}
	})
}
