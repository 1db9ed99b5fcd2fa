package components

// PlayerComponent 玩家（人或电脑）
//
// 拥有一个球拍、固定移动速度、比分以及己方球门线。
// 球心越过己方球门线表示对手得分。
type PlayerComponent struct {
	Side   Side
	Paddle *PaddleComponent
	// Speed 每次移动的像素数：玩家每次按键一大步，电脑每帧一小步
	Speed float64
	Score int
	// WinScore 达到该分数即获胜
	WinScore int
	// GoalX 己方球门线X坐标
	GoalX float64

	ScoreLabelX float64
	ScoreAlign  TextAlign
}

// Move 以玩家自身速度移动球拍
func (p *PlayerComponent) Move(isUp bool) {
	p.Paddle.Move(DirectionOf(isUp), p.Speed)
}

// AddScore 加一分，达到获胜分数时返回 true
func (p *PlayerComponent) AddScore() bool {
	p.Score++
	return p.Score >= p.WinScore
}

// Crossed 检查球心是否严格越过己方球门线
func (p *PlayerComponent) Crossed(ball *BallComponent) bool {
	if p.Side == SideLeft {
		return ball.X < p.GoalX
	}
	return ball.X > p.GoalX
}

// Track 电脑 AI：球在球拍中心或以上时向上移动，否则向下
//
// 没有预判，也没有平滑，强度只取决于每帧的移动速度。
func (p *PlayerComponent) Track(ball *BallComponent) {
	p.Move(ball.Y <= p.Paddle.CenterY())
}
