package systems

import (
	"log"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/game"
)

// StepResult 一帧更新中发生的事情
type StepResult struct {
	// PaddleHit 球撞到球拍，水平速度已反向
	PaddleHit bool
	// WallHit 球撞到上下边界，垂直速度已反向
	WallHit bool
	// Scorer 本帧得分的一方，无人得分为 SideNone
	Scorer components.Side
	// Ended 本帧对局结束
	Ended bool
}

// MatchSystem 每帧推进对局：移动球、碰撞、得分、胜负判定和电脑 AI
type MatchSystem struct {
	gameState *game.GameState
}

// NewMatchSystem 创建对局系统
func NewMatchSystem(gs *game.GameState) *MatchSystem {
	return &MatchSystem{gameState: gs}
}

// Update 执行一帧
//
// 对局结束后直接返回，球和球拍保持不动。
// 球的移动是固定步长，deltaTime 不参与计算。
//
// 参数:
//   - commands: 本帧玩家输入的移动指令
//
// 返回:
//   - StepResult: 本帧发生的碰撞与得分
func (s *MatchSystem) Update(commands []Command) StepResult {
	gs := s.gameState
	result := StepResult{Scorer: components.SideNone}

	if gs.IsEnded() {
		return result
	}
	gs.Tick++

	for _, cmd := range commands {
		gs.Human.Move(cmd == CommandMoveUp)
	}

	ball := gs.Ball
	ball.Move()

	// 球拍碰撞优先于进球判定，每帧最多反向一次
	if ball.Collides(gs.Human.Paddle) || ball.Collides(gs.Computer.Paddle) {
		ball.BounceHorizontal()
		result.PaddleHit = true
	} else if gs.Human.Crossed(ball) {
		result.Scorer = components.SideRight
	} else if gs.Computer.Crossed(ball) {
		result.Scorer = components.SideLeft
	}

	// 上下边界与水平方向相互独立
	if ball.OutOfBoundsY(gs.Config.Field.Height) {
		ball.BounceVertical()
		result.WallHit = true
	}

	if result.Scorer != components.SideNone {
		if s.score(result.Scorer) {
			result.Ended = true
			return result
		}
	}

	gs.Computer.Track(gs.Ball)
	return result
}

// score 给 scorer 加分并重新发球，获胜时结束对局并返回 true
func (s *MatchSystem) score(scorer components.Side) bool {
	gs := s.gameState
	player := gs.PlayerOn(scorer)

	won := player.AddScore()
	gs.RespawnBall()

	log.Printf("[MatchSystem] match=%s tick=%d goal for %s, score %d:%d",
		gs.ID, gs.Tick, scorer, gs.Human.Score, gs.Computer.Score)

	if won {
		gs.End(scorer)
		log.Printf("[MatchSystem] match=%s ended, winner=%s", gs.ID, scorer)
	}
	return won
}
