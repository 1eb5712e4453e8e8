package entities

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/swipedeck/pkg/components"
	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/ecs"
	"github.com/decker502/swipedeck/pkg/utils"
)

// 卡面配色
var (
	defaultCardColor = color.RGBA{R: 0xf4, G: 0xf1, B: 0xea, A: 0xff}
	cardBorderColor  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// 卡面内边距（像素）
const cardPadding = 16.0

// NewCardFaceEntity 创建卡面实体
//
// 参数：
//   - em: 实体管理器
//   - card: 卡片数据
//   - index: 卡片在卡片堆中的下标
//
// 返回：
//   - 卡面实体ID
//   - 错误信息（颜色格式错误）
func NewCardFaceEntity(em *ecs.EntityManager, card config.Card, index int) (ecs.EntityID, error) {
	bg, err := config.ParseColor(card.Color, defaultCardColor)
	if err != nil {
		return 0, fmt.Errorf("card %q: %w", card.ID, err)
	}

	img := ebiten.NewImage(int(config.CardWidth), int(config.CardHeight))
	img.Fill(bg)
	vector.StrokeRect(img, 1, 1, float32(config.CardWidth)-2, float32(config.CardHeight)-2, 2, cardBorderColor, false)

	y := int(cardPadding)
	for _, line := range CardFaceLines(card) {
		ebitenutil.DebugPrintAt(img, line, int(cardPadding), y)
		y += utils.DebugLineHeight
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.CardFaceComponent{
		CardID: card.ID,
		Index:  index,
		Image:  img,
		Width:  config.CardWidth,
		Height: config.CardHeight,
	})
	return entity, nil
}

// CardFaceLines 卡面上逐行绘制的文本：标题、副标题、空行、正文
func CardFaceLines(card config.Card) []string {
	cols := int((config.CardWidth - 2*cardPadding) / utils.DebugCharWidth)

	lines := utils.WrapText(card.Title, cols)
	if card.Subtitle != "" {
		lines = append(lines, utils.WrapText(card.Subtitle, cols)...)
	}
	if card.Body != "" {
		lines = append(lines, "")
		lines = append(lines, utils.WrapText(card.Body, cols)...)
	}
	return lines
}

// RebuildCardFaces 销毁旧卡面并为新卡片集合重新创建
// 颜色格式错误的卡片会被跳过并返回第一个错误
func RebuildCardFaces(em *ecs.EntityManager, cards []config.Card) error {
	for _, id := range ecs.GetEntitiesWith1[*components.CardFaceComponent](em) {
		if face, ok := ecs.GetComponent[*components.CardFaceComponent](em, id); ok && face.Image != nil {
			face.Image.Deallocate()
		}
		em.DestroyEntity(id)
	}
	em.RemoveMarkedEntities()

	var firstErr error
	for i, card := range cards {
		if _, err := NewCardFaceEntity(em, card, i); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
