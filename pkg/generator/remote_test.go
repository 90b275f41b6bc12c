package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shouni/go-ehon-kit/pkg/domain"

	"github.com/patrickmn/go-cache"
)

// fakeTextModel は、テスト用の TextModel 実装なのだ。
type fakeTextModel struct {
	response string
	err      error
	calls    int
}

func (f *fakeTextModel) GenerateText(_ context.Context, _, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const testPromptTemplate = "題名: {{.Title}}\nあらすじ: {{.Synopsis}}\n上限: {{.SlideLimit}}"

func newTestRemote(t *testing.T, client TextModel, respCache *cache.Cache) *RemoteDeckGenerator {
	t.Helper()
	g, err := NewRemoteDeckGenerator(client, "gemini-test", testPromptTemplate, DefaultSlideLimit, nil, respCache)
	if err != nil {
		t.Fatalf("生成器の構築に失敗したのだ: %v", err)
	}
	return g
}

func TestRemoteDeckGenerator_Generate(t *testing.T) {
	ctx := context.Background()
	seed := domain.StorySeed{Title: "ねこ", Synopsis: "冒険する。"}

	t.Run("AI応答を---区切りでデッキに変換できるのだ", func(t *testing.T) {
		fake := &fakeTextModel{response: "# ねこ\n---\nねこが あるく。\n---\n# おわり\n"}
		deck, err := newTestRemote(t, fake, nil).Generate(ctx, seed)
		if err != nil {
			t.Fatalf("生成失敗なのだ: %v", err)
		}
		if len(deck.Slides) != 3 {
			t.Fatalf("期待 3枚, 実際 %d枚: %+v", len(deck.Slides), deck.Slides)
		}
		if deck.Title != "ねこ" {
			t.Errorf("デッキの題名が違うのだ: %s", deck.Title)
		}
	})

	t.Run("Markdownフェンスは取り除かれるのだ", func(t *testing.T) {
		fake := &fakeTextModel{response: "```markdown\n# ねこ\n---\nおわり\n```"}
		deck, err := newTestRemote(t, fake, nil).Generate(ctx, seed)
		if err != nil {
			t.Fatalf("生成失敗なのだ: %v", err)
		}
		for _, s := range deck.Slides {
			if strings.Contains(s, "```") {
				t.Errorf("フェンスが残っているのだ: %q", s)
			}
		}
	})

	t.Run("通信エラーはそのままエラーになるのだ", func(t *testing.T) {
		fake := &fakeTextModel{err: errors.New("transport error")}
		if _, err := newTestRemote(t, fake, nil).Generate(ctx, seed); err == nil {
			t.Error("通信エラーでエラーが返りませんでした")
		}
	})

	t.Run("スライドが1枚も取れない応答はエラーなのだ", func(t *testing.T) {
		fake := &fakeTextModel{response: "---\n---\n"}
		if _, err := newTestRemote(t, fake, nil).Generate(ctx, seed); err == nil {
			t.Error("空応答でエラーが返りませんでした")
		}
	})

	t.Run("同一プロンプトの2回目はキャッシュから返るのだ", func(t *testing.T) {
		fake := &fakeTextModel{response: "# ねこ\n---\nおわり"}
		respCache := cache.New(cache.NoExpiration, 0)
		g := newTestRemote(t, fake, respCache)

		if _, err := g.Generate(ctx, seed); err != nil {
			t.Fatalf("1回目の生成に失敗したのだ: %v", err)
		}
		if _, err := g.Generate(ctx, seed); err != nil {
			t.Fatalf("2回目の生成に失敗したのだ: %v", err)
		}
		if fake.calls != 1 {
			t.Errorf("期待 1回の呼び出し, 実際 %d回", fake.calls)
		}
	})

	t.Run("クライアントなしでは構築できないのだ", func(t *testing.T) {
		if _, err := NewRemoteDeckGenerator(nil, "m", testPromptTemplate, 5, nil, nil); err == nil {
			t.Error("クライアントなしでエラーが発生しませんでした")
		}
	})
}

func TestFallbackDeckGenerator_Generate(t *testing.T) {
	ctx := context.Background()
	seed := domain.StorySeed{Title: "ねこ", Synopsis: "冒険する。"}
	local := NewLocalDeckGenerator(DefaultSlideLimit)

	t.Run("リモート成功時はその結果を返すのだ", func(t *testing.T) {
		fake := &fakeTextModel{response: "# リモートのねこ\n---\nおわり"}
		fb, err := NewFallbackDeckGenerator(newTestRemote(t, fake, nil), local)
		if err != nil {
			t.Fatalf("構築失敗なのだ: %v", err)
		}
		deck, err := fb.Generate(ctx, seed)
		if err != nil {
			t.Fatalf("生成失敗なのだ: %v", err)
		}
		if deck.Slides[0] != "# リモートのねこ" {
			t.Errorf("リモートの結果が返っていないのだ: %+v", deck.Slides)
		}
	})

	t.Run("リモート失敗時はローカル生成に切り替わるのだ", func(t *testing.T) {
		fake := &fakeTextModel{err: errors.New("transport error")}
		fb, err := NewFallbackDeckGenerator(newTestRemote(t, fake, nil), local)
		if err != nil {
			t.Fatalf("構築失敗なのだ: %v", err)
		}
		deck, err := fb.Generate(ctx, seed)
		if err != nil {
			t.Fatalf("フォールバックに失敗したのだ: %v", err)
		}
		if err := deck.Validate(); err != nil {
			t.Errorf("フォールバック結果が不正なのだ: %v", err)
		}
		if deck.Slides[0] != "# ねこ" {
			t.Errorf("ローカル生成の結果になっていないのだ: %+v", deck.Slides)
		}
	})
}
