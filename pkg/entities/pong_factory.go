package entities

import (
	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
)

// NewPaddle 创建指定一侧的球拍，垂直居中
//
// 左侧球拍距左边缘 EdgeToPaddle，右侧球拍距右边缘 EdgeToPaddle。
func NewPaddle(side components.Side, cfg *config.PongConfig) *components.PaddleComponent {
	x := cfg.Paddle.EdgeToPaddle
	if side == components.SideRight {
		x = cfg.Field.Width - cfg.Paddle.EdgeToPaddle - cfg.Paddle.Width
	}

	return &components.PaddleComponent{
		X:           x,
		Y:           (cfg.Field.Height - cfg.Paddle.Height) / 2,
		Width:       cfg.Paddle.Width,
		Height:      cfg.Paddle.Height,
		FieldHeight: cfg.Field.Height,
	}
}

// NewPlayer 创建玩家
//
// 左侧为人类玩家，右侧为电脑。两者的差别只在于移动速度：
// 人类每次按键移动 HumanSpeed，电脑每帧移动 ComputerSpeed。
// 比分文字以场地水平中线为轴左右对称。
func NewPlayer(side components.Side, cfg *config.PongConfig) *components.PlayerComponent {
	player := &components.PlayerComponent{
		Side:     side,
		Paddle:   NewPaddle(side, cfg),
		WinScore: cfg.Rules.WinScore,
	}

	centerX := cfg.Field.Width / 2
	if side == components.SideLeft {
		player.Speed = cfg.Paddle.HumanSpeed
		player.GoalX = 0
		player.ScoreLabelX = centerX - cfg.HUD.ScoreLabelOffset
		player.ScoreAlign = components.AlignEnd
	} else {
		player.Speed = cfg.Paddle.ComputerSpeed
		player.GoalX = cfg.Field.Width
		player.ScoreLabelX = centerX + cfg.HUD.ScoreLabelOffset
		player.ScoreAlign = components.AlignStart
	}

	return player
}

// NewBall 在场地中心创建一个新球，x/y 速度方向各自随机
func NewBall(cfg *config.PongConfig, rng components.Randomizer) *components.BallComponent {
	return &components.BallComponent{
		X:      cfg.Field.Width / 2,
		Y:      cfg.Field.Height / 2,
		SpeedX: components.RandomSpeed(rng, cfg.Ball.Speed),
		SpeedY: components.RandomSpeed(rng, cfg.Ball.Speed),
		Radius: cfg.Ball.Radius,
	}
}
