package scenes

import (
	"image/color"
	"strings"

	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/page"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 位图字体：每个字符 7px 宽、13px 高
const (
	glyphWidth  = 7.0
	glyphHeight = 13.0
)

var uiFace = text.NewGoXFace(basicfont.Face7x13)

// 默认配色（未选择主题时）
var (
	colorBackground = color.RGBA{R: 0xf4, G: 0xf1, B: 0xea, A: 0xff}
	colorText       = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	colorMuted      = color.RGBA{R: 0x77, G: 0x77, B: 0x77, A: 0xff}
	colorAccent     = color.RGBA{R: 0x35, G: 0x5c, B: 0x7d, A: 0xff}
	colorNav        = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xee}
	colorError      = color.RGBA{R: 0xd0, G: 0x10, B: 0x10, A: 0xff}
)

// palette 页面配色
type palette struct {
	Background color.RGBA
	Accent     color.RGBA
}

// themePalette 返回主题配色；未知或空主题使用默认配色
func themePalette(cfg *config.EffectsConfig, theme string) palette {
	p := palette{Background: colorBackground, Accent: colorAccent}
	tc, ok := cfg.Themes[theme]
	if !ok {
		return p
	}
	if c, err := config.ParseHexColor(tc.Background); err == nil {
		p.Background = c
	}
	if c, err := config.ParseHexColor(tc.Accent); err == nil {
		p.Accent = c
	}
	return p
}

// drawText 在 (x, y) 处绘制单行文字，y 为文字顶部
func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, uiFace, op)
}

// textWidth 返回单行文字宽度
func textWidth(s string, scale float64) float64 {
	return float64(len([]rune(s))) * glyphWidth * scale
}

// wrapText 按单词换行，使每行宽度不超过 maxWidth
// 单个超长单词单独成行
func wrapText(s string, maxWidth, scale float64) []string {
	maxChars := int(maxWidth / (glyphWidth * scale))
	if maxChars < 1 {
		maxChars = 1
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var b strings.Builder
	for _, w := range words {
		n := len([]rune(b.String()))
		if n > 0 && n+1+len([]rune(w)) > maxChars {
			lines = append(lines, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w)
	}
	return append(lines, b.String())
}

// fillRect 填充矩形
func fillRect(screen *ebiten.Image, r page.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// strokeRect 描边矩形
func strokeRect(screen *ebiten.Image, r page.Rect, width float64, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), clr, false)
}

// button 导航栏或页面上的可点击文字
type button struct {
	ID     string
	Label  string
	Bounds page.Rect // 屏幕坐标
}

// hitButton 返回命中的按钮
func hitButton(buttons []button, x, y float64) (button, bool) {
	for _, b := range buttons {
		if b.Bounds.Contains(x, y) {
			return b, true
		}
	}
	return button{}, false
}

// layoutButtonsRight 从右向左排列导航栏按钮
func layoutButtonsRight(labels []button, right, y, gap, scale float64) []button {
	out := make([]button, len(labels))
	x := right
	for i := len(labels) - 1; i >= 0; i-- {
		w := textWidth(labels[i].Label, scale) + 16
		x -= w
		out[i] = labels[i]
		out[i].Bounds = page.Rect{X: x, Y: y, W: w, H: glyphHeight*scale + 12}
		x -= gap
	}
	return out
}

// drawButton 绘制按钮
func drawButton(screen *ebiten.Image, b button, active bool, accent color.RGBA) {
	if active {
		fillRect(screen, b.Bounds, accent)
		drawText(screen, b.Label, b.Bounds.X+8, b.Bounds.Y+6, 1, color.White)
		return
	}
	strokeRect(screen, b.Bounds, 1, accent)
	drawText(screen, b.Label, b.Bounds.X+8, b.Bounds.Y+6, 1, accent)
}
