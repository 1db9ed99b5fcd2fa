package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/game"
	"github.com/decker502/pong/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 对局场景
//
// 持有对局状态和三个系统：输入、对局推进、渲染。
// 每个 tick：读取按键 → 推进一帧；每次绘制：根据当前状态画一帧。
type GameScene struct {
	gameState *game.GameState

	inputSystem  *systems.InputSystem
	matchSystem  *systems.MatchSystem
	renderSystem *systems.RenderSystem
}

// NewGameScene 创建对局场景
//
// 参数:
//   - gs: 对局状态
//   - keys: 按键来源，为 nil 时读取真实键盘
func NewGameScene(gs *game.GameState, keys systems.KeySource) (*GameScene, error) {
	inputSystem, err := systems.NewInputSystem(gs, gs.Config, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to create input system: %w", err)
	}

	renderSystem, err := systems.NewRenderSystem(gs)
	if err != nil {
		return nil, fmt.Errorf("failed to create render system: %w", err)
	}

	log.Printf("[GameScene] match=%s started, first serve speed=(%.1f, %.1f)",
		gs.ID, gs.Ball.SpeedX, gs.Ball.SpeedY)

	return &GameScene{
		gameState:    gs,
		inputSystem:  inputSystem,
		matchSystem:  systems.NewMatchSystem(gs),
		renderSystem: renderSystem,
	}, nil
}

// Update 推进一帧
//
// 球按固定步长移动，deltaTime 不参与计算。对局结束后不再推进。
func (s *GameScene) Update(deltaTime float64) {
	if s.gameState.IsEnded() {
		return
	}

	result := s.matchSystem.Update(s.inputSystem.Poll())
	if result.Ended {
		outcome := "lost"
		if s.gameState.Winner == components.SideLeft {
			outcome = "won"
		}
		log.Printf("[GameScene] match=%s over after %d ticks, human %s %d:%d",
			s.gameState.ID, s.gameState.Tick, outcome,
			s.gameState.Human.Score, s.gameState.Computer.Score)
	}
}

// Draw 绘制当前状态
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// GameState 返回场景持有的对局状态
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}
