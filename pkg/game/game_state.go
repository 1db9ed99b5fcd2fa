package game

import (
	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/entities"
	"github.com/google/uuid"
)

// Phase 对局阶段
type Phase int

const (
	// PhasePlaying 对局进行中，每帧更新
	PhasePlaying Phase = iota
	// PhaseEnded 有一方获胜，不再更新，直到重新启动程序
	PhaseEnded
)

var phaseName = map[Phase]string{
	PhasePlaying: "playing",
	PhaseEnded:   "ended",
}

func (p Phase) String() string {
	return phaseName[p]
}

// GameState 一局游戏的全部状态
//
// 由场景持有并显式传给各个系统，不存在全局实例。
type GameState struct {
	ID     uuid.UUID
	Config *config.PongConfig

	Phase  Phase
	Winner components.Side
	Tick   int // 已经执行的更新帧数

	Human    *components.PlayerComponent // 左侧，键盘控制
	Computer *components.PlayerComponent // 右侧，AI 控制
	Ball     *components.BallComponent

	rng components.Randomizer
}

// NewGameState 创建新对局：比分为 0，球在中心并带随机速度
func NewGameState(cfg *config.PongConfig, rng components.Randomizer) *GameState {
	return &GameState{
		ID:       uuid.New(),
		Config:   cfg,
		Phase:    PhasePlaying,
		Winner:   components.SideNone,
		Human:    entities.NewPlayer(components.SideLeft, cfg),
		Computer: entities.NewPlayer(components.SideRight, cfg),
		Ball:     entities.NewBall(cfg, rng),
		rng:      rng,
	}
}

// RespawnBall 用新的随机速度重新创建球
func (gs *GameState) RespawnBall() {
	gs.Ball = entities.NewBall(gs.Config, gs.rng)
}

// End 结束对局并记录胜者
func (gs *GameState) End(winner components.Side) {
	gs.Phase = PhaseEnded
	gs.Winner = winner
}

// IsEnded 对局是否已经结束
func (gs *GameState) IsEnded() bool {
	return gs.Phase == PhaseEnded
}

// PlayerOn 返回指定一侧的玩家
func (gs *GameState) PlayerOn(side components.Side) *components.PlayerComponent {
	switch side {
	case components.SideLeft:
		return gs.Human
	case components.SideRight:
		return gs.Computer
	}
	return nil
}

// HumanWon 玩家是否获胜
func (gs *GameState) HumanWon() bool {
	return gs.IsEnded() && gs.Winner == components.SideLeft
}
