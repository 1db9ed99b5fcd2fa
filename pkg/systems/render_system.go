package systems

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"

	"github.com/decker502/pong/pkg/components"
	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// 中线虚线参数
const (
	netDashWidth  = 4.0
	netDashHeight = 20.0
	netDashGap    = 15.0
)

// DrawKind 绘制指令类型
type DrawKind int

const (
	DrawRect DrawKind = iota
	DrawCircle
	DrawText
)

// DrawCommand 一条绘制指令
//
// 矩形使用 X/Y/Width/Height（左上角），圆使用 X/Y/Radius（圆心），
// 文字使用 X/Y 作为锚点，Centered 表示以锚点为中心。
type DrawCommand struct {
	Kind     DrawKind
	X, Y     float64
	Width    float64
	Height   float64
	Radius   float64
	Text     string
	Size     float64
	Align    components.TextAlign
	Centered bool
	Color    color.RGBA
}

// palette 从配置解析出的颜色
type palette struct {
	background color.RGBA
	paddle     color.RGBA
	ball       color.RGBA
	text       color.RGBA
}

// RenderSystem 把对局状态画到屏幕上
//
// 先由 BuildFrame 生成绘制指令列表，再逐条执行。
// 指令列表不依赖 GPU，便于测试。
type RenderSystem struct {
	gameState  *game.GameState
	faceSource *text.GoTextFaceSource
	colors     palette
}

// NewRenderSystem 创建渲染系统并加载内置字体
func NewRenderSystem(gs *game.GameState) (*RenderSystem, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}

	colors, err := resolvePalette(gs.Config)
	if err != nil {
		return nil, err
	}

	return &RenderSystem{
		gameState:  gs,
		faceSource: source,
		colors:     colors,
	}, nil
}

func resolvePalette(cfg *config.PongConfig) (palette, error) {
	var p palette
	for _, entry := range []struct {
		name string
		dst  *color.RGBA
	}{
		{cfg.Field.Background, &p.background},
		{cfg.Paddle.Color, &p.paddle},
		{cfg.Ball.Color, &p.ball},
		{cfg.HUD.TextColor, &p.text},
	} {
		c, ok := config.ColorByName(entry.name)
		if !ok {
			return palette{}, fmt.Errorf("unknown color: %s", entry.name)
		}
		*entry.dst = c
	}
	return p, nil
}

// BuildFrame 根据当前状态生成一帧的绘制指令
//
// 顺序：中线、两个球拍、球、比分，对局结束时最后追加结束文字。
func (s *RenderSystem) BuildFrame() []DrawCommand {
	gs := s.gameState
	cfg := gs.Config
	frame := make([]DrawCommand, 0, 32)

	if cfg.HUD.ShowNet {
		x := cfg.Field.Width/2 - netDashWidth/2
		for y := netDashGap / 2; y < cfg.Field.Height; y += netDashHeight + netDashGap {
			frame = append(frame, DrawCommand{
				Kind:   DrawRect,
				X:      x,
				Y:      y,
				Width:  netDashWidth,
				Height: netDashHeight,
				Color:  s.colors.paddle,
			})
		}
	}

	for _, player := range []*components.PlayerComponent{gs.Human, gs.Computer} {
		paddle := player.Paddle
		frame = append(frame, DrawCommand{
			Kind:   DrawRect,
			X:      paddle.X,
			Y:      paddle.Y,
			Width:  paddle.Width,
			Height: paddle.Height,
			Color:  s.colors.paddle,
		})
	}

	frame = append(frame, DrawCommand{
		Kind:   DrawCircle,
		X:      gs.Ball.X,
		Y:      gs.Ball.Y,
		Radius: gs.Ball.Radius,
		Color:  s.colors.ball,
	})

	for _, player := range []*components.PlayerComponent{gs.Human, gs.Computer} {
		frame = append(frame, DrawCommand{
			Kind:  DrawText,
			X:     player.ScoreLabelX,
			Y:     cfg.HUD.ScoreY,
			Text:  strconv.Itoa(player.Score),
			Size:  cfg.HUD.FontSize,
			Align: player.ScoreAlign,
			Color: s.colors.text,
		})
	}

	if gs.IsEnded() {
		message := cfg.HUD.LoseMessage
		if gs.HumanWon() {
			message = cfg.HUD.WinMessage
		}
		frame = append(frame, DrawCommand{
			Kind:     DrawText,
			X:        cfg.Field.Width / 2,
			Y:        cfg.Field.Height / 2,
			Text:     message,
			Size:     cfg.HUD.EndFontSize,
			Centered: true,
			Color:    s.colors.text,
		})
	}

	return frame
}

// Draw 清屏并绘制当前帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(s.colors.background)

	for _, cmd := range s.BuildFrame() {
		switch cmd.Kind {
		case DrawRect:
			vector.DrawFilledRect(screen,
				float32(cmd.X), float32(cmd.Y), float32(cmd.Width), float32(cmd.Height),
				cmd.Color, false)
		case DrawCircle:
			vector.DrawFilledCircle(screen,
				float32(cmd.X), float32(cmd.Y), float32(cmd.Radius),
				cmd.Color, true)
		case DrawText:
			s.drawText(screen, cmd)
		}
	}
}

func (s *RenderSystem) drawText(screen *ebiten.Image, cmd DrawCommand) {
	face := &text.GoTextFace{
		Source: s.faceSource,
		Size:   cmd.Size,
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.X, cmd.Y)
	op.ColorScale.ScaleWithColor(cmd.Color)

	switch {
	case cmd.Centered:
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	case cmd.Align == components.AlignEnd:
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignStart
	}

	text.Draw(screen, cmd.Text, face, op)
}
