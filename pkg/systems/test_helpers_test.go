package systems

import (
	"math/rand"
	"testing"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// newTestGameState 创建使用默认配置和固定随机种子的对局
func newTestGameState(t *testing.T) *game.GameState {
	t.Helper()
	return game.NewGameState(config.DefaultPongConfig(), rand.New(rand.NewSource(1)))
}

// placeBall 把球放到指定位置和速度
func placeBall(gs *game.GameState, x, y, speedX, speedY float64) *components.BallComponent {
	gs.Ball.X, gs.Ball.Y = x, y
	gs.Ball.SpeedX, gs.Ball.SpeedY = speedX, speedY
	return gs.Ball
}

// fakeKeys 模拟按键来源，pressed 中的按键视为本帧刚按下
type fakeKeys struct {
	pressed map[ebiten.Key]bool
}

func (f *fakeKeys) IsKeyJustPressed(key ebiten.Key) bool {
	return f.pressed[key]
}
