package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/decker502/swipedeck/pkg/embedded"
)

// DefaultCardSetPath 嵌入的演示卡片
const DefaultCardSetPath = "data/cards.yaml"

// Card 演示用卡片数据
type Card struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title" validate:"required,max=40"`
	Subtitle string `yaml:"subtitle" validate:"max=60"`
	Body     string `yaml:"body"`
	Color    string `yaml:"color" validate:"omitempty,hexcolor"` // 背景色，如 "#ff8844"
}

// CardSet 卡片集合
type CardSet struct {
	Name  string `yaml:"name"`
	Cards []Card `yaml:"cards" validate:"dive"`
}

// ParseCardSet 解析 YAML 卡片集合，缺少 id 的卡片分配 UUID
func ParseCardSet(data []byte) (*CardSet, error) {
	var set CardSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal card set: %w", err)
	}
	if err := validate.Struct(set); err != nil {
		return nil, fmt.Errorf("invalid card set: %w", err)
	}

	for i := range set.Cards {
		if set.Cards[i].ID == "" {
			set.Cards[i].ID = uuid.NewString()
		}
	}
	return &set, nil
}

// LoadCardSet 加载卡片集合
// "data/" 开头的路径优先从嵌入资源读取，其余从本地文件系统读取
func LoadCardSet(path string) (*CardSet, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(path, "data/") && embedded.IsInitialized() {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read card set %s: %w", path, err)
	}
	return ParseCardSet(data)
}

// ParseColor 解析 "#rrggbb" 格式的颜色，空字符串返回 fallback
func ParseColor(hex string, fallback color.RGBA) (color.RGBA, error) {
	if hex == "" {
		return fallback, nil
	}
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return fallback, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
