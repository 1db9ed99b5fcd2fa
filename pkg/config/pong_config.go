package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/decker502/pong/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内嵌默认配置的路径（见根目录 embed.go）
const DefaultConfigPath = "data/pong.yaml"

// PongConfig 游戏全局配置
//
// 所有坐标和尺寸单位都是逻辑像素，速度单位是像素/帧。
// 配置文件位置: data/pong.yaml
type PongConfig struct {
	Window WindowConfig `yaml:"window"`
	Field  FieldConfig  `yaml:"field"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Rules  RulesConfig  `yaml:"rules"`
	HUD    HUDConfig    `yaml:"hud"`
	Input  InputConfig  `yaml:"input"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title      string `yaml:"title"`
	TPS        int    `yaml:"tps"`        // 每秒逻辑帧数
	Fullscreen bool   `yaml:"fullscreen"` // 启动时是否全屏
}

// FieldConfig 场地配置，场地尺寸在整局游戏中固定
type FieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"` // colornames 颜色名
}

// PaddleConfig 球拍配置
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	EdgeToPaddle float64 `yaml:"edgeToPaddle"` // 场地侧边到球拍的距离
	// HumanSpeed 玩家每次按键移动的像素数
	HumanSpeed float64 `yaml:"humanSpeed"`
	// ComputerSpeed 电脑每帧移动的像素数（决定 AI 难度）
	ComputerSpeed float64 `yaml:"computerSpeed"`
	Color         string  `yaml:"color"`
}

// BallConfig 球配置
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // x/y 两个方向的速度大小
	Color  string  `yaml:"color"`
}

// RulesConfig 规则配置
type RulesConfig struct {
	WinScore int `yaml:"winScore"`
}

// HUDConfig 比分和结束文字配置
type HUDConfig struct {
	// ScoreLabelOffset 比分文字距场地水平中线的距离，左右对称
	ScoreLabelOffset float64 `yaml:"scoreLabelOffset"`
	ScoreY           float64 `yaml:"scoreY"`
	FontSize         float64 `yaml:"fontSize"`
	EndFontSize      float64 `yaml:"endFontSize"`
	TextColor        string  `yaml:"textColor"`
	WinMessage       string  `yaml:"winMessage"`
	LoseMessage      string  `yaml:"loseMessage"`
	ShowNet          bool    `yaml:"showNet"`
}

// InputConfig 按键绑定，值为按键名（如 "ArrowUp"）
type InputConfig struct {
	Up   string `yaml:"up"`
	Down string `yaml:"down"`
}

// keyNames 支持绑定的按键名
var keyNames = map[string]ebiten.Key{
	"ArrowUp":   ebiten.KeyArrowUp,
	"ArrowDown": ebiten.KeyArrowDown,
	"W":         ebiten.KeyW,
	"S":         ebiten.KeyS,
	"K":         ebiten.KeyK,
	"J":         ebiten.KeyJ,
	"Numpad8":   ebiten.KeyNumpad8,
	"Numpad2":   ebiten.KeyNumpad2,
}

// KeyByName 按名称查找按键
func KeyByName(name string) (ebiten.Key, bool) {
	key, ok := keyNames[name]
	return key, ok
}

// ColorByName 按 colornames 名称查找颜色
func ColorByName(name string) (color.RGBA, bool) {
	c, ok := colornames.Map[name]
	return c, ok
}

// DefaultPongConfig 返回默认配置，与 data/pong.yaml 保持一致
func DefaultPongConfig() *PongConfig {
	return &PongConfig{
		Window: WindowConfig{
			Title: "Pong",
			TPS:   60,
		},
		Field: FieldConfig{
			Width:      800,
			Height:     600,
			Background: "black",
		},
		Paddle: PaddleConfig{
			Width:         20,
			Height:        100,
			EdgeToPaddle:  5,
			HumanSpeed:    50,
			ComputerSpeed: 1.5,
			Color:         "white",
		},
		Ball: BallConfig{
			Radius: 10,
			Speed:  2,
			Color:  "white",
		},
		Rules: RulesConfig{
			WinScore: 11,
		},
		HUD: HUDConfig{
			ScoreLabelOffset: 40,
			ScoreY:           20,
			FontSize:         48,
			EndFontSize:      64,
			TextColor:        "white",
			WinMessage:       "You win!",
			LoseMessage:      "You lose!",
			ShowNet:          true,
		},
		Input: InputConfig{
			Up:   "ArrowUp",
			Down: "ArrowDown",
		},
	}
}

// ParsePongConfig 解析 YAML 配置
//
// 未出现在 YAML 中的字段保留默认值，解析后进行校验。
func ParsePongConfig(data []byte) (*PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pong config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pong config: %w", err)
	}

	return cfg, nil
}

// LoadPongConfig 从磁盘加载配置文件
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *PongConfig: 加载成功后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadPongConfig(path string) (*PongConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pong config: %w", err)
	}
	return ParsePongConfig(data)
}

// LoadEmbeddedPongConfig 加载内嵌的默认配置 data/pong.yaml
//
// 调用前必须先调用 embedded.Init()。
func LoadEmbeddedPongConfig() (*PongConfig, error) {
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded pong config: %w", err)
	}
	return ParsePongConfig(data)
}

// Validate 验证配置有效性
func (c *PongConfig) Validate() error {
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %.1fx%.1f", c.Field.Width, c.Field.Height)
	}

	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return fmt.Errorf("paddle size must be positive, got %.1fx%.1f", c.Paddle.Width, c.Paddle.Height)
	}
	if c.Paddle.Height > c.Field.Height {
		return fmt.Errorf("paddle height(%.1f) exceeds field height(%.1f)", c.Paddle.Height, c.Field.Height)
	}
	if c.Paddle.EdgeToPaddle < 0 || 2*(c.Paddle.EdgeToPaddle+c.Paddle.Width) >= c.Field.Width {
		return fmt.Errorf("paddles do not fit in field width %.1f", c.Field.Width)
	}
	if c.Paddle.HumanSpeed <= 0 || c.Paddle.ComputerSpeed <= 0 {
		return fmt.Errorf("paddle speeds must be positive, got human=%.1f computer=%.1f",
			c.Paddle.HumanSpeed, c.Paddle.ComputerSpeed)
	}

	if c.Ball.Radius <= 0 {
		return fmt.Errorf("ball radius must be positive, got %.1f", c.Ball.Radius)
	}
	if c.Ball.Speed <= 0 {
		return fmt.Errorf("ball speed must be positive, got %.1f", c.Ball.Speed)
	}

	if c.Rules.WinScore < 1 {
		return fmt.Errorf("win score must be at least 1, got %d", c.Rules.WinScore)
	}

	if c.HUD.FontSize <= 0 || c.HUD.EndFontSize <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}

	for field, name := range map[string]string{
		"field.background": c.Field.Background,
		"paddle.color":     c.Paddle.Color,
		"ball.color":       c.Ball.Color,
		"hud.textColor":    c.HUD.TextColor,
	} {
		if _, ok := ColorByName(name); !ok {
			return fmt.Errorf("unknown color '%s' for %s", name, field)
		}
	}

	for field, name := range map[string]string{
		"input.up":   c.Input.Up,
		"input.down": c.Input.Down,
	} {
		if _, ok := KeyByName(name); !ok {
			return fmt.Errorf("unknown key '%s' for %s", name, field)
		}
	}
	if c.Input.Up == c.Input.Down {
		return fmt.Errorf("input.up and input.down are both bound to '%s'", c.Input.Up)
	}

	return nil
}
