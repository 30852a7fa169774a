// cmd/termview/main.go
//
// Терминальный фронтенд: та же симуляция, отрисовка символами через tcell.
// Клик мышью ставит башню, p — пауза, s — скорость, d — линии целей, q — выход.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"path-tower-defense/internal/app"
	"path-tower-defense/internal/config"
	"path-tower-defense/internal/interfaces"
	"path-tower-defense/internal/logging"
	"path-tower-defense/internal/utils"
)

const frameInterval = 33 * time.Millisecond

type termView struct {
	screen   tcell.Screen
	game     interfaces.Game
	viewport utils.Viewport
	logger   logging.Logger
	debug    bool
}

func newTermView(game interfaces.Game, logger logging.Logger) (*termView, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	v := &termView{screen: screen, game: game, logger: logger, debug: true}
	v.resize()
	return v, nil
}

// resize fits the 1000x600 field into the terminal. A cell is about twice as
// tall as it is wide, so the viewport works in half-rows.
func (v *termView) resize() {
	w, h := v.screen.Size()
	scale := math.Min(float64(w)/config.ScreenWidth, float64(2*h)/config.ScreenHeight)
	v.viewport = utils.Viewport{Width: float64(w), Height: float64(2 * h), Scale: scale}
}

func (v *termView) cell(x, y float64) (int, int) {
	sx, sy := v.viewport.WorldToScreen(x, y)
	return int(sx), int(sy / 2)
}

func (v *termView) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'p':
				v.game.HandlePauseClick()
			case 's':
				v.game.HandleSpeedClick()
			case 'd':
				v.debug = !v.debug
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 || !v.game.CanPlaceByClick() {
			return true
		}
		cx, cy := ev.Position()
		wx, wy := v.viewport.ScreenToWorld(float64(cx)+0.5, float64(cy)*2+1)
		if _, err := v.game.PlaceTower(wx, wy); err != nil {
			v.logger.Warn(context.Background(), "tower placement rejected", logging.Err(err))
		}
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	}
	return true
}

func (v *termView) draw() {
	v.screen.Clear()

	pathStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	points := v.game.Path().Points()
	for i := 1; i < len(points); i++ {
		v.drawLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, '·', pathStyle)
	}
	if len(points) > 0 {
		x, y := v.cell(points[0].X, points[0].Y)
		v.screen.SetContent(x, y, 'S', nil, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}

	if v.debug {
		targetStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
		for _, t := range v.game.Targets() {
			v.drawLine(t.FromX, t.FromY, t.ToX, t.ToY, '-', targetStyle)
		}
	}

	towerStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	for _, t := range v.game.Towers() {
		x, y := v.cell(t.X, t.Y)
		v.screen.SetContent(x, y, 'T', nil, towerStyle)
	}

	for _, e := range v.game.Enemies() {
		x, y := v.cell(e.X, e.Y)
		// Яркость по масштабу: полное здоровье — ярко-красный.
		intensity := int32(math.Max(60, math.Min(255, 255*e.Scale/1.2)))
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(intensity, 40, 40))
		v.screen.SetContent(x, y, utils.HeadingGlyph(e.Rotation), nil, style)
	}

	s := v.game.Stats()
	status := fmt.Sprintf(" %d | x%.0f | enemies %d towers %d | killed %d leaked %d ",
		v.game.Resources(), config.SpeedMultipliers[v.game.SpeedStep()], s.Enemies, s.Towers, s.Killed, s.ReachedGoal)
	if v.game.IsPaused() {
		status += "| PAUSED "
	}
	for i, r := range status {
		v.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
	v.screen.Show()
}

func (v *termView) drawLine(x0, y0, x1, y1 float64, r rune, style tcell.Style) {
	ax, ay := v.cell(x0, y0)
	bx, by := v.cell(x1, y1)
	steps := max(abs(bx-ax), abs(by-ay), 1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := ax + int(math.Round(float64(bx-ax)*t))
		y := ay + int(math.Round(float64(by-ay)*t))
		v.screen.SetContent(x, y, r, nil, style)
	}
}

func (v *termView) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			dt := math.Min(now.Sub(last).Seconds(), config.MaxDeltaTime)
			last = now
			if !v.game.IsPaused() {
				v.game.Update(dt)
			}
			v.draw()
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	logPath := flag.String("log", "", "write logs to this file (the terminal is taken by the view)")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	logger := logging.New(logging.Config{Level: os.Getenv("LOG_LEVEL"), Format: os.Getenv("LOG_FORMAT"), Output: out})

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	game := app.NewGame(cfg, logger, nil)
	defer game.Close()

	view, err := newTermView(game, logger)
	if err != nil {
		log.Fatal(err)
	}
	defer view.screen.Fini()
	view.run()
}
