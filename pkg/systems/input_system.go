package systems

import (
	"fmt"
	"log"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command 玩家球拍移动指令
type Command int

const (
	CommandMoveUp Command = iota
	CommandMoveDown
)

func (c Command) String() string {
	if c == CommandMoveUp {
		return "move_up"
	}
	return "move_down"
}

// KeySource 按键事件来源
type KeySource interface {
	// IsKeyJustPressed 该键是否在本帧刚被按下
	IsKeyJustPressed(key ebiten.Key) bool
}

// ebitenKeySource 使用 inpututil 读取真实键盘
type ebitenKeySource struct{}

func (ebitenKeySource) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// InputSystem 把键盘按下事件翻译成球拍移动指令
//
// 每次按下只产生一次移动，按住不放不会连续移动；未绑定的按键全部忽略。
type InputSystem struct {
	gameState *game.GameState
	keys      KeySource
	upKey     ebiten.Key
	downKey   ebiten.Key
}

// NewInputSystem 创建输入系统，按配置绑定上下两个按键
//
// 参数:
//   - gs: 对局状态
//   - cfg: 配置（使用 Input 段）
//   - keys: 按键来源，为 nil 时读取真实键盘
func NewInputSystem(gs *game.GameState, cfg *config.PongConfig, keys KeySource) (*InputSystem, error) {
	upKey, ok := config.KeyByName(cfg.Input.Up)
	if !ok {
		return nil, fmt.Errorf("unknown key for move up: %s", cfg.Input.Up)
	}
	downKey, ok := config.KeyByName(cfg.Input.Down)
	if !ok {
		return nil, fmt.Errorf("unknown key for move down: %s", cfg.Input.Down)
	}

	if keys == nil {
		keys = ebitenKeySource{}
	}

	return &InputSystem{
		gameState: gs,
		keys:      keys,
		upKey:     upKey,
		downKey:   downKey,
	}, nil
}

// Poll 收集本帧的移动指令，对局结束后不再接受输入
func (s *InputSystem) Poll() []Command {
	if s.gameState.IsEnded() {
		return nil
	}

	var commands []Command
	if s.keys.IsKeyJustPressed(s.upKey) {
		commands = append(commands, CommandMoveUp)
	}
	if s.keys.IsKeyJustPressed(s.downKey) {
		commands = append(commands, CommandMoveDown)
	}

	if len(commands) > 0 {
		log.Printf("[InputSystem] tick=%d commands=%v", s.gameState.Tick, commands)
	}
	return commands
}
