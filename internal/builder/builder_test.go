package builder

import (
	"testing"

	"github.com/shouni/go-ehon-kit/internal/config"
	"github.com/shouni/go-ehon-kit/pkg/generator"
)

func TestBuildDeckGenerator(t *testing.T) {
	t.Run("APIキーがなければローカル生成器を返すのだ", func(t *testing.T) {
		cfg := &config.Config{GeminiModel: config.DefaultModel}
		appCtx := NewAppContext(cfg, nil, nil, nil, nil)

		gen, err := BuildDeckGenerator(&appCtx, "story")
		if err != nil {
			t.Fatalf("構築に失敗したのだ: %v", err)
		}
		if _, ok := gen.(*generator.LocalDeckGenerator); !ok {
			t.Errorf("ローカル生成器を期待したのだが %T が返ってきたのだ", gen)
		}
	})

	t.Run("キーがあってもクライアントが初期化できていなければローカルで進めるのだ", func(t *testing.T) {
		cfg := &config.Config{
			GeminiAPIKey: "dummy-key",
			GeminiModel:  config.DefaultModel,
		}
		// 初期化失敗をシミュレートするため、aiClient は nil のまま渡すのだ
		appCtx := NewAppContext(cfg, nil, nil, nil, nil)

		gen, err := BuildDeckGenerator(&appCtx, "story")
		if err != nil {
			t.Fatalf("クライアント不在でエラーになってはいけないのだ: %v", err)
		}
		if _, ok := gen.(*generator.LocalDeckGenerator); !ok {
			t.Errorf("ローカル生成器を期待したのだが %T が返ってきたのだ", gen)
		}
	})
}
