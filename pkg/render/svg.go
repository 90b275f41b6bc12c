package render

import (
	"fmt"
	"html"
)

// palette は、プレースホルダー画像の背景色の循環パレットなのだ。
var palette = []string{"#FFEDD5", "#E0F2FE", "#ECFCCB", "#FCE7F3", "#FEF9C3"}

// PlaceholderSVG は、スライドのラベルを中央に描いたシンプルなSVG画像を生成するのだ。
// 背景色はスライド番号でパレットから決定論的に選ばれるのだ。
// ラベルはXMLエスケープされるので、物語の内容がマークアップを壊すことはないのだよ。
func PlaceholderSVG(label string, index int) string {
	bg := palette[index%len(palette)]
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="1280" height="720">
  <defs>
    <linearGradient id="g" x1="0" y1="0" x2="1" y2="1">
      <stop offset="0%%" stop-color="%s"/>
      <stop offset="100%%" stop-color="#ffffff"/>
    </linearGradient>
  </defs>
  <rect width="100%%" height="100%%" fill="url(#g)"/>
  <text x="50%%" y="50%%" dominant-baseline="middle" text-anchor="middle" font-size="48" font-family="'Segoe UI', 'Noto Sans JP', sans-serif" fill="#333">%s</text>
</svg>
`, bg, html.EscapeString(label))
}
