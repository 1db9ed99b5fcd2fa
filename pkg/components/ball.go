package components

// Randomizer 随机数来源，*rand.Rand 满足该接口
type Randomizer interface {
	Float64() float64
}

// BallComponent 球
//
// 速度在 x/y 两个方向独立，大小固定，方向在生成时随机决定。
// 进球后整个球会被重新创建，而不是复位。
type BallComponent struct {
	X      float64 // 圆心X坐标
	Y      float64 // 圆心Y坐标
	SpeedX float64 // 像素/帧
	SpeedY float64 // 像素/帧
	Radius float64
}

// RandomSpeed 以相同概率返回 +speed 或 -speed
func RandomSpeed(rng Randomizer, speed float64) float64 {
	if rng.Float64() < 0.5 {
		return -speed
	}
	return speed
}

// Move 按固定步长移动一帧（不按时间缩放）
func (b *BallComponent) Move() {
	b.X += b.SpeedX
	b.Y += b.SpeedY
}

// Collides 检查球的外接正方形是否与球拍矩形重叠
//
// 这是盒与盒的检测，而不是圆与矩形的检测；边缘恰好接触不算碰撞。
func (b *BallComponent) Collides(p *PaddleComponent) bool {
	return b.X-b.Radius < p.Right() &&
		b.X+b.Radius > p.X &&
		b.Y-b.Radius < p.Bottom() &&
		b.Y+b.Radius > p.Y
}

// OutOfBoundsY 检查球是否越过场地上下边界
func (b *BallComponent) OutOfBoundsY(fieldHeight float64) bool {
	return b.Y-b.Radius < 0 || b.Y+b.Radius > fieldHeight
}

// BounceHorizontal 水平速度反向（撞到球拍）
func (b *BallComponent) BounceHorizontal() {
	b.SpeedX = -b.SpeedX
}

// BounceVertical 垂直速度反向（撞到上下边界）
func (b *BallComponent) BounceVertical() {
	b.SpeedY = -b.SpeedY
}
