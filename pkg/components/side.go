package components

// Side 球拍所在的一侧
type Side int

const (
	// SideNone 无（用于表示尚无胜者）
	SideNone Side = iota
	// SideLeft 左侧（玩家）
	SideLeft
	// SideRight 右侧（电脑）
	SideRight
)

var sideName = map[Side]string{
	SideNone:  "none",
	SideLeft:  "left",
	SideRight: "right",
}

func (s Side) String() string {
	return sideName[s]
}

// Opponent 返回对手一侧
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return SideNone
}

// Direction 球拍移动方向
type Direction int

const (
	Up Direction = iota
	Down
)

var directionName = map[Direction]string{
	Up:   "up",
	Down: "down",
}

func (d Direction) String() string {
	return directionName[d]
}

// DirectionOf 将 isUp 布尔值转换为方向
func DirectionOf(isUp bool) Direction {
	if isUp {
		return Up
	}
	return Down
}

// TextAlign 比分文字对齐方式
type TextAlign int

const (
	// AlignStart 文字从锚点向右延伸
	AlignStart TextAlign = iota
	// AlignEnd 文字在锚点左侧结束
	AlignEnd
)
