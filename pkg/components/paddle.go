package components

import "math"

// PaddleComponent 场地一侧的球拍
//
// X 在创建时确定，之后只有 Y 可变，且始终位于 [0, FieldHeight-Height] 之内。
type PaddleComponent struct {
	X           float64 // 左上角X坐标（像素）
	Y           float64 // 左上角Y坐标（像素）
	Width       float64
	Height      float64
	FieldHeight float64 // 场地高度，用于限制移动范围
}

// Move 按方向移动球拍 speed 像素，并限制在场地内
func (p *PaddleComponent) Move(dir Direction, speed float64) {
	if dir == Up {
		p.Y = math.Max(0, p.Y-speed)
	} else {
		p.Y = math.Min(p.FieldHeight-p.Height, p.Y+speed)
	}
}

// CenterY 返回球拍的垂直中心
func (p *PaddleComponent) CenterY() float64 {
	return p.Y + p.Height/2
}

// Right 返回球拍右边缘X坐标
func (p *PaddleComponent) Right() float64 {
	return p.X + p.Width
}

// Bottom 返回球拍下边缘Y坐标
func (p *PaddleComponent) Bottom() float64 {
	return p.Y + p.Height
}
