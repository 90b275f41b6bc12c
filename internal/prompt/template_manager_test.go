package prompt

import (
	"strings"
	"testing"
)

func TestGetPromptByMode(t *testing.T) {
	t.Run("storyモードのテンプレートが取得できるのだ", func(t *testing.T) {
		content, err := GetPromptByMode(ModeStory)
		if err != nil {
			t.Fatalf("取得失敗なのだ: %v", err)
		}
		if !strings.Contains(content, "{{.Title}}") || !strings.Contains(content, "{{.Synopsis}}") {
			t.Error("テンプレートにプレースホルダーが含まれていないのだ")
		}
		if !strings.Contains(content, "---") {
			t.Error("スライド区切りの指示が含まれていないのだ")
		}
	})

	t.Run("marpモードのテンプレートが取得できるのだ", func(t *testing.T) {
		content, err := GetPromptByMode(ModeMarp)
		if err != nil {
			t.Fatalf("取得失敗なのだ: %v", err)
		}
		if !strings.Contains(content, "{{.SlideLimit}}") {
			t.Error("スライド上限のプレースホルダーが含まれていないのだ")
		}
	})

	t.Run("未知のモードはエラーになるのだ", func(t *testing.T) {
		if _, err := GetPromptByMode("webtoon"); err == nil {
			t.Error("未知のモードでエラーが発生しませんでした")
		}
	})
}
