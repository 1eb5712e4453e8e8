package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/decker502/swipedeck/pkg/swipe"
)

// DefaultDeckConfigPath 嵌入的默认卡片堆配置
const DefaultDeckConfigPath = "data/deck.yaml"

// EnvPrefix 环境变量前缀，如 SWIPEDECK_STACK_DEPTH=3
const EnvPrefix = "SWIPEDECK"

// DeckConfig 卡片堆配置（YAML / 环境变量）
//
// 只做结构校验，运行时不再检查；转换为 swipe.Options 见 ToOptions。
type DeckConfig struct {
	Loop           bool `mapstructure:"loop"`
	OnlyHorizontal bool `mapstructure:"only-horizontal"`

	Stack          bool    `mapstructure:"stack"`
	StackDepth     int     `mapstructure:"stack-depth" validate:"min=1,max=10"`
	StackOffsetX   float64 `mapstructure:"stack-offset-x" validate:"gte=-100,lte=100"`
	StackOffsetY   float64 `mapstructure:"stack-offset-y" validate:"gte=-100,lte=100"`
	StackScaleStep float64 `mapstructure:"stack-scale-step" validate:"gte=0,lt=0.5"`

	DisableGestures bool `mapstructure:"disable-gestures"`
	FadeOnSwipe     bool `mapstructure:"fade-on-swipe"`

	ShowYup  bool   `mapstructure:"show-yup"`
	ShowNope bool   `mapstructure:"show-nope"`
	YupText  string `mapstructure:"yup-text" validate:"max=32"`
	NopeText string `mapstructure:"nope-text" validate:"max=32"`

	FPS        int    `mapstructure:"fps" validate:"min=1,max=240"`
	ExitEasing string `mapstructure:"exit-easing" validate:"oneof=linear ease-out-cubic ease-in-quad"`
}

var validate = validator.New()

// newDeckViper 创建带默认值和环境变量覆盖的 viper 实例
func newDeckViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	defaults := swipe.DefaultOptions[struct{}]()
	v.SetDefault("loop", defaults.Loop)
	v.SetDefault("only-horizontal", defaults.OnlyHorizontal)
	v.SetDefault("stack", defaults.Stack)
	v.SetDefault("stack-depth", defaults.StackDepth)
	v.SetDefault("stack-offset-x", defaults.StackOffsetX)
	v.SetDefault("stack-offset-y", defaults.StackOffsetY)
	v.SetDefault("stack-scale-step", defaults.StackScaleStep)
	v.SetDefault("disable-gestures", defaults.DisableGestures)
	v.SetDefault("fade-on-swipe", defaults.FadeOnSwipe)
	v.SetDefault("show-yup", defaults.ShowYup)
	v.SetDefault("show-nope", defaults.ShowNope)
	v.SetDefault("yup-text", defaults.YupText)
	v.SetDefault("nope-text", defaults.NopeText)
	v.SetDefault("fps", defaults.FPS)
	v.SetDefault("exit-easing", "linear")
	return v
}

// LoadDeckConfig 从文件加载卡片堆配置
//
// path 为空或文件不存在时只使用默认值和环境变量。
func LoadDeckConfig(path string) (DeckConfig, error) {
	var cfg DeckConfig
	v := newDeckViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var configFileNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
				return cfg, fmt.Errorf("failed to read deck config %s: %w", path, err)
			}
		}
	}

	return decodeDeckConfig(v)
}

// ParseDeckConfig 从 YAML 数据加载卡片堆配置（用于嵌入的默认配置）
// 环境变量仍然可以覆盖
func ParseDeckConfig(data []byte) (DeckConfig, error) {
	v := newDeckViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return DeckConfig{}, fmt.Errorf("failed to parse deck config: %w", err)
	}
	return decodeDeckConfig(v)
}

func decodeDeckConfig(v *viper.Viper) (DeckConfig, error) {
	var cfg DeckConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode deck config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate 结构校验
func (c DeckConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid deck config: %w", err)
	}
	return nil
}

// EasingByName 按名称查找飞出动画时间曲线，未知名称返回线性
func EasingByName(name string) swipe.Easing {
	switch name {
	case "ease-out-cubic":
		return swipe.EaseOutCubic
	case "ease-in-quad":
		return swipe.EaseInQuad
	default:
		return swipe.EaseLinear
	}
}

// ToOptions 把配置转换为 swipe.Options，回调需由调用方补充
func ToOptions[C any](c DeckConfig) swipe.Options[C] {
	opts := swipe.DefaultOptions[C]()
	opts.Loop = c.Loop
	opts.OnlyHorizontal = c.OnlyHorizontal
	opts.Stack = c.Stack
	opts.StackDepth = c.StackDepth
	opts.StackOffsetX = c.StackOffsetX
	opts.StackOffsetY = c.StackOffsetY
	opts.StackScaleStep = c.StackScaleStep
	opts.DisableGestures = c.DisableGestures
	opts.FadeOnSwipe = c.FadeOnSwipe
	opts.ShowYup = c.ShowYup
	opts.ShowNope = c.ShowNope
	opts.YupText = c.YupText
	opts.NopeText = c.NopeText
	opts.FPS = c.FPS
	opts.ExitEasing = EasingByName(c.ExitEasing)
	return opts
}
