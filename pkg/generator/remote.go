package generator

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"text/template"

	"github.com/shouni/go-ehon-kit/pkg/domain"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// promptData は、プロンプトテンプレートへ埋め込むデータなのだ。
type promptData struct {
	Title      string
	Synopsis   string
	SlideLimit int
}

// RemoteDeckGenerator は、Gemini にプロンプトを送信してスライドデッキを生成する構造体なのだ。
// 呼び出しは1回きりのベストエフォートで、リトライは行わないのだ。
// 同一プロンプトの応答はTTLキャッシュに保持され、1プロセス内での再呼び出しを省くのだよ。
type RemoteDeckGenerator struct {
	client     TextModel
	model      string
	tmpl       *template.Template
	slideLimit int
	limiter    *rate.Limiter
	respCache  *cache.Cache
}

// NewRemoteDeckGenerator は新しい RemoteDeckGenerator を生成するのだ。
// promptTemplate は text/template 形式（{{.Title}}, {{.Synopsis}}, {{.SlideLimit}}）なのだ。
func NewRemoteDeckGenerator(
	client TextModel,
	model string,
	promptTemplate string,
	slideLimit int,
	limiter *rate.Limiter,
	respCache *cache.Cache,
) (*RemoteDeckGenerator, error) {
	if client == nil {
		return nil, fmt.Errorf("TextModel は必須です")
	}
	if slideLimit < 3 {
		slideLimit = DefaultSlideLimit
	}

	tmpl, err := template.New("deck_prompt").Parse(promptTemplate)
	if err != nil {
		return nil, fmt.Errorf("プロンプトテンプレートのパースに失敗しました: %w", err)
	}

	return &RemoteDeckGenerator{
		client:     client,
		model:      model,
		tmpl:       tmpl,
		slideLimit: slideLimit,
		limiter:    limiter,
		respCache:  respCache,
	}, nil
}

// Generate は、プロンプト構築、AIによる生成、結果のパースを一気に行うのだ。
// 通信エラー・空応答・パース不能は、すべて呼び出し側のフォールバック契機となるエラーなのだ。
func (g *RemoteDeckGenerator) Generate(ctx context.Context, seed domain.StorySeed) (domain.SlideDeck, error) {
	if err := seed.Validate(); err != nil {
		return domain.SlideDeck{}, fmt.Errorf("シードが不正です: %w", err)
	}

	promptContent, err := g.buildPrompt(seed)
	if err != nil {
		return domain.SlideDeck{}, err
	}

	cacheKey := g.cacheKey(promptContent)
	if g.respCache != nil {
		if cached, ok := g.respCache.Get(cacheKey); ok {
			if deck, ok := cached.(domain.SlideDeck); ok {
				return deck, nil
			}
		}
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return domain.SlideDeck{}, fmt.Errorf("レート制限の待機に失敗しました: %w", err)
		}
	}

	raw, err := g.client.GenerateText(ctx, promptContent, g.model)
	if err != nil {
		return domain.SlideDeck{}, fmt.Errorf("スライドテキストの生成に失敗したのだ: %w", err)
	}

	deck, err := parseDeckResponse(seed.Title, raw)
	if err != nil {
		return domain.SlideDeck{}, err
	}

	if g.respCache != nil {
		g.respCache.Set(cacheKey, deck, cache.DefaultExpiration)
	}
	return deck, nil
}

// buildPrompt は、シードをテンプレートに埋め込んでプロンプトを作るのだ。
func (g *RemoteDeckGenerator) buildPrompt(seed domain.StorySeed) (string, error) {
	var buf bytes.Buffer
	data := promptData{
		Title:      seed.Title,
		Synopsis:   seed.Synopsis,
		SlideLimit: g.slideLimit,
	}
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("プロンプトの構築に失敗しました: %w", err)
	}
	return buf.String(), nil
}

// cacheKey は、モデル名とプロンプトから決定論的なキャッシュキーを作るのだ。
func (g *RemoteDeckGenerator) cacheKey(prompt string) string {
	h := sha256.Sum256([]byte(g.model + "\x00" + prompt))
	return hex.EncodeToString(h[:])
}

// parseDeckResponse は、AIが返したテキストからコードフェンスを除去し、
// 「---」区切りでスライド列に分解するのだ。1枚も得られなければエラーなのだ。
func parseDeckResponse(title, raw string) (domain.SlideDeck, error) {
	text := strings.TrimSpace(raw)
	// AIが付けがちなMarkdownフェンス (```markdown ... ```) を取り除く処理なのだ
	text = strings.TrimPrefix(text, "```markdown")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var slides []string
	for _, chunk := range strings.Split(text, "---") {
		if s := strings.TrimSpace(chunk); s != "" {
			slides = append(slides, s)
		}
	}

	deck := domain.SlideDeck{Title: title, Slides: slides}
	if err := deck.Validate(); err != nil {
		return domain.SlideDeck{}, fmt.Errorf("AI応答からスライドを抽出できませんでした: %w", err)
	}
	return deck, nil
}
