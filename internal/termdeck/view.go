package termdeck

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/swipedeck/pkg/config"
	"github.com/decker502/swipedeck/pkg/swipe"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#cdd6f4")).
			Padding(0, 1).
			Width(CardColumns)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f5e0dc"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	queuedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	nopeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f38ba8"))
	yupStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6e3a1"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
)

// 透明度低于该值的标签不显示，低于 fadedOpacity 的卡片和标签以 faint 绘制
const (
	hiddenOpacity = 0.05
	fadedOpacity  = 0.75
)

type drawnCard struct {
	card  config.Card
	frame swipe.StackFrame
}

// termComposer 收集一帧要绘制的内容
type termComposer struct {
	cards       []drawnCard
	affordances []swipe.Affordance
	noMore      bool
}

func (c *termComposer) DrawCard(card config.Card, frame swipe.StackFrame) {
	c.cards = append(c.cards, drawnCard{card: card, frame: frame})
}

func (c *termComposer) DrawNoMoreCards() {
	c.noMore = true
}

func (c *termComposer) DrawAffordance(a swipe.Affordance) {
	c.affordances = append(c.affordances, a)
}

// View 渲染当前帧
func (m *Model) View() string {
	comp := &termComposer{}
	m.swiper.Render(comp)

	var b strings.Builder
	b.WriteString(m.renderAffordances(comp.affordances))
	b.WriteString("\n\n")

	if comp.noMore {
		msg := "No more cards. Press r to restart."
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, msg))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderStack(comp.cards))
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderAffordances Nope 靠左、Yup 靠右
func (m *Model) renderAffordances(affordances []swipe.Affordance) string {
	var left, right string
	for _, a := range affordances {
		label := affordanceLabel(a)
		if a.Kind == swipe.AffordanceNope {
			left = label
		} else {
			right = label
		}
	}

	margin := m.cardLeft()
	gap := CardColumns + 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", margin) + left + strings.Repeat(" ", gap) + right
}

// affordanceLabel 按透明度和缩放决定标签样式
// 缩放在终端里表现为标签两侧的括号
func affordanceLabel(a swipe.Affordance) string {
	if a.Opacity < hiddenOpacity {
		return ""
	}
	text := a.Text
	if text == "" {
		if a.Kind == swipe.AffordanceYup {
			text = "Yup!"
		} else {
			text = "Nope!"
		}
	}
	if a.Scale >= 0.95 {
		text = "[ " + text + " ]"
	}

	style := nopeStyle
	if a.Kind == swipe.AffordanceYup {
		style = yupStyle
	}
	if a.Opacity < fadedOpacity {
		style = style.Faint(true)
	}
	return style.Render(text)
}

// renderStack 活动卡片在上，排队卡片在其下方露出底边
func (m *Model) renderStack(cards []drawnCard) string {
	if len(cards) == 0 {
		return ""
	}
	active := cards[len(cards)-1]
	queued := cards[:len(cards)-1]

	shiftCols, shiftRows := CellOffset(active.frame)
	left := m.cardLeft() + shiftCols
	if left < 0 {
		left = 0
	}

	var b strings.Builder
	if shiftRows > 0 {
		b.WriteString(strings.Repeat("\n", shiftRows))
	}

	style := cardStyle
	if active.frame.Opacity < fadedOpacity {
		style = style.Faint(true)
	}
	box := style.Render(cardContent(active.card))
	b.WriteString(indent(box, left))
	b.WriteString("\n")

	// 排队卡片：由浅到深，每层露出一行底边
	for i := len(queued) - 1; i >= 0; i-- {
		level := queued[i].frame.Level
		inset := level * 2
		width := CardColumns + 2 - 2*inset
		if width < 2 {
			continue
		}
		edge := "╰" + strings.Repeat("─", width-2) + "╯"
		b.WriteString(strings.Repeat(" ", m.cardLeft()+inset))
		b.WriteString(queuedStyle.Render(edge))
		b.WriteString("\n")
	}
	return b.String()
}

// CellOffset 把活动卡片的像素偏移换算为终端列 / 行
// 向上的偏移在终端里无法表现，行数不小于 0
func CellOffset(frame swipe.StackFrame) (cols, rows int) {
	cols = int(math.Round((frame.TranslateX + frame.Left) / CellWidthPx))
	rows = int(math.Round((frame.TranslateY + frame.Top) / CellHeightPx))
	if rows < 0 {
		rows = 0
	}
	return cols, rows
}

func cardContent(card config.Card) string {
	var parts []string
	parts = append(parts, titleStyle.Render(card.Title))
	if card.Subtitle != "" {
		parts = append(parts, subtitleStyle.Render(card.Subtitle))
	}
	if card.Body != "" {
		parts = append(parts, "", card.Body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func indent(block string, cols int) string {
	if cols <= 0 {
		return block
	}
	pad := strings.Repeat(" ", cols)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderStatus() string {
	opts := m.swiper.Options()
	position := "-"
	if !m.swiper.IsExhausted() {
		position = fmt.Sprintf("%d/%d", m.swiper.Index()+1, m.swiper.Len())
	}
	status := fmt.Sprintf("yup %d  nope %d  card %s  [%s]  %s",
		m.yups, m.nopes, position, m.swiper.State(), m.lastEvent)
	help := fmt.Sprintf("←/h nope  →/l yup  f fade=%v  o loop=%v  r restart  q quit",
		opts.FadeOnSwipe, opts.Loop)
	return status + "\n" + helpStyle.Render(help)
}
