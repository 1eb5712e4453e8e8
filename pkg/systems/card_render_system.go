package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/swipedeck/pkg/components"
	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/ecs"
	"github.com/decker502/swipedeck/pkg/swipe"
	"github.com/decker502/swipedeck/pkg/utils"
)

// 徽章配色
var (
	nopeBadgeColor = color.RGBA{R: 0xe0, G: 0x3a, B: 0x3e, A: 0xff}
	yupBadgeColor  = color.RGBA{R: 0x2e, G: 0xb8, B: 0x72, A: 0xff}
)

const (
	// shadowOffsetPerElevation 每单位 elevation 的阴影偏移（像素）
	shadowOffsetPerElevation = 0.15
	// shadowAlpha 阴影不透明度
	shadowAlpha = 0.35
)

// CardRenderSystem 卡片堆渲染系统
// 实现 swipe.Composer，把卡片堆的每帧视觉参数画到屏幕上
//
// 职责：
//   - 按 StackFrame 的平移、旋转、缩放、透明度绘制预渲染卡面
//   - 绘制 Yup / Nope 徽章
//   - 卡片耗尽时绘制提示
type CardRenderSystem struct {
	entityManager *ecs.EntityManager

	screen      *ebiten.Image
	faces       map[int]*components.CardFaceComponent
	badges      map[badgeKey]*ebiten.Image
	noMoreCards string
}

type badgeKey struct {
	kind swipe.AffordanceKind
	text string
}

var _ swipe.Composer[config.Card] = (*CardRenderSystem)(nil)

// NewCardRenderSystem 创建卡片堆渲染系统
func NewCardRenderSystem(em *ecs.EntityManager) *CardRenderSystem {
	return &CardRenderSystem{
		entityManager: em,
		badges:        make(map[badgeKey]*ebiten.Image),
		noMoreCards:   "No more cards",
	}
}

// SetNoMoreCardsText 设置卡片耗尽时的提示文本
func (s *CardRenderSystem) SetNoMoreCardsText(text string) {
	s.noMoreCards = text
}

// Draw 绘制卡片堆
func (s *CardRenderSystem) Draw(screen *ebiten.Image, swiper *swipe.Swiper[config.Card]) {
	s.screen = screen
	s.collectFaces()
	swiper.Render(s)
	s.screen = nil
}

// collectFaces 按卡片下标索引卡面
func (s *CardRenderSystem) collectFaces() {
	s.faces = make(map[int]*components.CardFaceComponent)
	for _, id := range ecs.GetEntitiesWith1[*components.CardFaceComponent](s.entityManager) {
		face, ok := ecs.GetComponent[*components.CardFaceComponent](s.entityManager, id)
		if ok {
			s.faces[face.Index] = face
		}
	}
}

// DrawCard 绘制一张卡片
func (s *CardRenderSystem) DrawCard(card config.Card, frame swipe.StackFrame) {
	face, ok := s.faces[frame.Index]
	if !ok || face.Image == nil || s.screen == nil {
		return
	}

	// 阴影：elevation 越高偏移越大
	if frame.Elevation > 0 {
		shadow := &ebiten.DrawImageOptions{}
		shadow.GeoM = CardGeoM(frame, face.Width, face.Height)
		off := float64(frame.Elevation) * shadowOffsetPerElevation
		shadow.GeoM.Translate(off, off)
		shadow.ColorScale.Scale(0, 0, 0, float32(shadowAlpha*frame.Opacity))
		s.screen.DrawImage(face.Image, shadow)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = CardGeoM(frame, face.Width, face.Height)
	op.ColorScale.ScaleAlpha(float32(frame.Opacity))
	op.Filter = ebiten.FilterLinear
	s.screen.DrawImage(face.Image, op)
}

// DrawNoMoreCards 绘制卡片耗尽提示
func (s *CardRenderSystem) DrawNoMoreCards() {
	if s.screen == nil {
		return
	}
	w := utils.MeasureDebugText(s.noMoreCards)
	ebitenutil.DebugPrintAt(s.screen, s.noMoreCards, int(config.DeckCenterX-w/2), int(config.DeckCenterY))
}

// DrawAffordance 绘制 Yup / Nope 徽章
// View 为 *ebiten.Image 时直接绘制该图片，否则绘制文字徽章
func (s *CardRenderSystem) DrawAffordance(a swipe.Affordance) {
	if s.screen == nil || a.Opacity <= 0 {
		return
	}

	img, ok := a.View.(*ebiten.Image)
	if !ok || img == nil {
		img = s.badge(a.Kind, a.Text)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = BadgeGeoM(a, float64(img.Bounds().Dx()), float64(img.Bounds().Dy()))
	op.ColorScale.ScaleAlpha(float32(a.Opacity))
	s.screen.DrawImage(img, op)
}

// badge 获取（或创建）文字徽章图片
func (s *CardRenderSystem) badge(kind swipe.AffordanceKind, text string) *ebiten.Image {
	key := badgeKey{kind: kind, text: text}
	if img, ok := s.badges[key]; ok {
		return img
	}

	clr := nopeBadgeColor
	if kind == swipe.AffordanceYup {
		clr = yupBadgeColor
	}
	img := ebiten.NewImage(int(config.BadgeWidth), int(config.BadgeHeight))
	vector.DrawFilledRect(img, 0, 0, float32(config.BadgeWidth), float32(config.BadgeHeight), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe0}, false)
	vector.StrokeRect(img, 2, 2, float32(config.BadgeWidth)-4, float32(config.BadgeHeight)-4, 4, clr, false)
	tw := utils.MeasureDebugText(text)
	ebitenutil.DebugPrintAt(img, text, int((config.BadgeWidth-tw)/2), int(config.BadgeHeight/2)-utils.DebugLineHeight/2)

	s.badges[key] = img
	return img
}

// CardGeoM 计算卡片的变换矩阵
// 以卡片中心为锚点缩放、旋转，再平移到卡片堆中心加上堆叠偏移和拖拽偏移
func CardGeoM(frame swipe.StackFrame, w, h float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-w/2, -h/2)
	g.Scale(frame.Scale, frame.Scale)
	g.Rotate(frame.Rotation * math.Pi / 180)
	g.Translate(
		config.DeckCenterX+frame.Left+frame.TranslateX,
		config.DeckCenterY+frame.Top+frame.TranslateY,
	)
	return g
}

// BadgeGeoM 计算徽章的变换矩阵
// Nope 在卡片堆左上，Yup 在右上，以徽章中心为锚点缩放
func BadgeGeoM(a swipe.Affordance, w, h float64) ebiten.GeoM {
	cx := config.DeckCenterX - config.CardWidth/4
	if a.Kind == swipe.AffordanceYup {
		cx = config.DeckCenterX + config.CardWidth/4
	}
	cy := config.DeckCenterY - config.CardHeight/2 + config.BadgeMarginY

	var g ebiten.GeoM
	g.Translate(-w/2, -h/2)
	g.Scale(a.Scale, a.Scale)
	g.Translate(cx, cy)
	return g
}
