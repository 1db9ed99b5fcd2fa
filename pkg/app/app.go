// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，main.go 只负责解析参数和启动。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/game"
	"github.com/decker502/pong/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Game 游戏配置，为 nil 时使用默认配置
	Game *config.PongConfig
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	gameConfig               *config.PongConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig := cfg.Game
	if gameConfig == nil {
		gameConfig = config.DefaultPongConfig()
	}
	if err := gameConfig.Validate(); err != nil {
		return nil, fmt.Errorf("游戏配置无效: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Random seed: %d", seed)

	gameState := game.NewGameState(gameConfig, rand.New(rand.NewSource(seed)))

	gameScene, err := scenes.NewGameScene(gameState, nil)
	if err != nil {
		return nil, fmt.Errorf("对局场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gameScene)

	log.Printf("[App] Field %.0fx%.0f, win score %d, tps %d",
		gameConfig.Field.Width, gameConfig.Field.Height, gameConfig.Rules.WinScore, gameConfig.Window.TPS)

	return &App{
		sceneManager: sceneManager,
		gameConfig:   gameConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// ScreenSize 返回逻辑屏幕尺寸（即场地尺寸）
func (a *App) ScreenSize() (int, int) {
	return int(a.gameConfig.Field.Width), int(a.gameConfig.Field.Height)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（默认每秒 60 次）
func (a *App) Update() error {
	// ESC 退出
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Escape pressed, quitting")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.ScreenSize())
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(a.gameConfig.Window.TPS)
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.ScreenSize()
}

// Run 设置窗口并启动游戏循环，阻塞直到窗口关闭或按下 ESC
func (a *App) Run() error {
	width, height := a.ScreenSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(a.gameConfig.Window.Title)
	ebiten.SetTPS(a.gameConfig.Window.TPS)
	ebiten.SetFullscreen(a.gameConfig.Window.Fullscreen)

	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
