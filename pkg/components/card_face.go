package components

import "github.com/hajimehoshi/ebiten/v2"

// CardFaceComponent 预渲染的卡面
//
// 每张卡片一个实体；渲染系统按 Index 查找卡面，再用 StackFrame 的
// 平移、旋转、缩放、透明度把它画到屏幕上。
type CardFaceComponent struct {
	CardID string // 卡片ID（来自 cards.yaml 或生成的 UUID）
	Index  int    // 卡片在卡片堆中的下标

	Image  *ebiten.Image // 卡面图片，尺寸为 Width x Height
	Width  float64
	Height float64
}
