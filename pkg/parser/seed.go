package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shouni/go-ehon-kit/pkg/domain"
)

// ErrInputFormat は、シードファイルの形式が不正な場合に返される番兵エラーなのだ。
// errors.Is で判定できるのだよ。
var ErrInputFormat = errors.New("シードの形式が不正です")

// シードファイルで認識されるラベルなのだ。日本語と英語の両方を受け付けるのだ。
var (
	titleLabels    = []string{"題名:", "title:"}
	synopsisLabels = []string{"あらすじ:", "synopsis:"}
)

// ParseSeed は、UTF-8のシードテキストから StorySeed を抽出するのだ。
//
// 認識される形式:
//
//	題名: <タイトル>
//	あらすじ: <あらすじ>
//
// あらすじラベルの後に続くラベルなしの行は、あらすじの続きとして扱うのだ。
// その他の行は無視されるのだよ。題名・あらすじのどちらかが欠けている、
// または空の場合は ErrInputFormat を返すのだ。副作用は一切ないのだ。
func ParseSeed(raw []byte) (domain.StorySeed, error) {
	var (
		title         string
		synopsisLines []string
		inSynopsis    bool
	)

	for _, ln := range strings.Split(string(raw), "\n") {
		line := strings.TrimRight(ln, "\r")

		if rest, ok := matchLabel(line, titleLabels); ok {
			title = strings.TrimSpace(rest)
			inSynopsis = false
			continue
		}
		if rest, ok := matchLabel(line, synopsisLabels); ok {
			if s := strings.TrimSpace(rest); s != "" {
				synopsisLines = append(synopsisLines, s)
			}
			inSynopsis = true
			continue
		}
		if inSynopsis && strings.TrimSpace(line) != "" {
			synopsisLines = append(synopsisLines, strings.TrimSpace(line))
		}
	}

	seed := domain.StorySeed{
		Title:    title,
		Synopsis: strings.Join(synopsisLines, "\n"),
	}
	if err := seed.Validate(); err != nil {
		return domain.StorySeed{}, fmt.Errorf("%w: %s", ErrInputFormat, err)
	}
	return seed, nil
}

// matchLabel は、行が指定ラベルのいずれかで始まる場合に残りの文字列を返すのだ。
// 英語ラベルは大文字小文字を区別しないのだ。
func matchLabel(line string, labels []string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, label := range labels {
		if len(trimmed) >= len(label) && strings.EqualFold(trimmed[:len(label)], label) {
			return trimmed[len(label):], true
		}
	}
	return "", false
}
