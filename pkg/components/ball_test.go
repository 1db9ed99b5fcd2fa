package components

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedRandom 依次返回预设的随机值
type fixedRandom struct {
	values []float64
	next   int
}

func (f *fixedRandom) Float64() float64 {
	v := f.values[f.next%len(f.values)]
	f.next++
	return v
}

func TestRandomSpeedCoinFlip(t *testing.T) {
	assert.Equal(t, -2.0, RandomSpeed(&fixedRandom{values: []float64{0.49}}, 2))
	assert.Equal(t, 2.0, RandomSpeed(&fixedRandom{values: []float64{0.5}}, 2))
	assert.Equal(t, -2.0, RandomSpeed(&fixedRandom{values: []float64{0}}, 2))
}

func TestRandomSpeedDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const trials = 10000

	negatives := 0
	for i := 0; i < trials; i++ {
		speed := RandomSpeed(rng, 2)
		assert.Contains(t, []float64{-2, 2}, speed)
		if speed < 0 {
			negatives++
		}
	}

	// 两种符号的出现频率应大致相等
	assert.InDelta(t, trials/2, negatives, trials*0.05)
}

func TestBallMove(t *testing.T) {
	ball := &BallComponent{X: 400, Y: 300, SpeedX: 2, SpeedY: -2, Radius: 10}

	ball.Move()
	assert.Equal(t, 402.0, ball.X)
	assert.Equal(t, 298.0, ball.Y)

	ball.Move()
	assert.Equal(t, 404.0, ball.X)
	assert.Equal(t, 296.0, ball.Y)
}

func TestBallCollides(t *testing.T) {
	paddle := &PaddleComponent{X: 5, Y: 250, Width: 20, Height: 100, FieldHeight: 600}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{name: "overlapping front face", x: 30, y: 300, want: true},
		{name: "touching front face", x: 35, y: 300, want: false},
		{name: "far away", x: 400, y: 300, want: false},
		{name: "above paddle", x: 15, y: 235, want: false},
		{name: "clipping top edge", x: 15, y: 241, want: true},
		{name: "below paddle", x: 15, y: 360, want: false},
		// 外接正方形的角与矩形重叠，即使圆本身没有碰到
		{name: "box corner overlap", x: 33, y: 242, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := &BallComponent{X: tt.x, Y: tt.y, Radius: 10}
			assert.Equal(t, tt.want, ball.Collides(paddle))
		})
	}
}

func TestBallOutOfBoundsY(t *testing.T) {
	ball := &BallComponent{X: 400, Y: 10, Radius: 10}
	assert.False(t, ball.OutOfBoundsY(600), "touching the top edge is not out of bounds")

	ball.Y = 9
	assert.True(t, ball.OutOfBoundsY(600))

	ball.Y = 591
	assert.True(t, ball.OutOfBoundsY(600))
}

func TestBallBounce(t *testing.T) {
	ball := &BallComponent{SpeedX: 2, SpeedY: -2}

	ball.BounceHorizontal()
	assert.Equal(t, -2.0, ball.SpeedX)
	assert.Equal(t, -2.0, ball.SpeedY)

	ball.BounceVertical()
	assert.Equal(t, 2.0, ball.SpeedY)
}
