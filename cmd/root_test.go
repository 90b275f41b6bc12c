package cmd

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPreRunAppE(t *testing.T) {
	t.Run("APIキー未設定でもエラーにならず、通知も出さないのだ", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")

		var buf bytes.Buffer
		original := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
		defer slog.SetDefault(original)

		if err := preRunAppE(nil, nil); err != nil {
			t.Fatalf("キー未設定でエラーになってはいけないのだ: %v", err)
		}

		// ローカルモードへの切り替え通知はパイプライン側が一度だけ出すのだ。
		// ここで重ねて出すと1回の実行で二重に通知されてしまうのだよ。
		if strings.Contains(buf.String(), "GEMINI_API_KEY") {
			t.Errorf("実行前フックが余計な通知を出しているのだ: %s", buf.String())
		}
	})
}
