package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/conhill/vampdrop/audio"
	"github.com/conhill/vampdrop/core"
	"github.com/conhill/vampdrop/engine"
	"github.com/conhill/vampdrop/event"
	"github.com/conhill/vampdrop/level"
	"github.com/conhill/vampdrop/parameter"
	"github.com/conhill/vampdrop/vmath"
)

const dropsPerTick = 4

var typeStyles = map[core.BodyType]tcell.Style{
	core.TypeStandard:        tcell.StyleDefault.Foreground(tcell.ColorWhite),
	core.TypeBonusPoints:     tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.TypeMultiplierBoost: tcell.StyleDefault.Foreground(tcell.ColorAqua),
	core.TypeLucky:           tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.TypeHarmful:         tcell.StyleDefault.Foreground(tcell.ColorRed),
}

// Game is the terminal front-end: it owns the screen, drains the drop
// queue into the sim, consumes events for score/audio, and renders.
type Game struct {
	screen tcell.Screen
	cues   *audio.Cues

	sim    *engine.Sim
	queue  *event.Queue
	drops  engine.DropQueue
	lv     *level.Level
	points float64

	width, height int
	dropX         float32
	dropType      core.BodyType
	audioOn       bool
}

func NewGame(lv *level.Level) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	queue := event.NewQueue()
	sim, err := engine.New(lv, queue)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	g := &Game{
		screen:   screen,
		cues:     audio.NewCues(),
		sim:      sim,
		queue:    queue,
		lv:       lv,
		dropType: core.TypeStandard,
	}
	g.width, g.height = screen.Size()
	g.dropX = (lv.Arena.Min.X + lv.Arena.Max.X) * 0.5

	if err := g.cues.Initialize(); err != nil {
		// Non-fatal, the demo can run without sound
		log.Printf("audio init failed: %v", err)
	} else {
		g.audioOn = true
	}

	return g, nil
}

func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.dropX -= 1
			if g.dropX < g.lv.Arena.Min.X {
				g.dropX = g.lv.Arena.Min.X
			}
		case tcell.KeyRight:
			g.dropX += 1
			if g.dropX > g.lv.Arena.Max.X {
				g.dropX = g.lv.Arena.Max.X
			}
		case tcell.KeyRune:
			switch r := ev.Rune(); r {
			case 'q':
				return false
			case ' ', 'd':
				g.drop(1)
			case 'b':
				g.drop(20)
			case '1', '2', '3', '4', '5':
				g.dropType = core.BodyType(r - '1')
			}
		}
	case *tcell.EventResize:
		g.width, g.height = g.screen.Size()
		g.screen.Sync()
	}
	return true
}

func (g *Game) drop(n int) {
	top := g.lv.Arena.Max.Y - 1
	for i := 0; i < n; i++ {
		g.drops.Push(vmath.Vec3{X: g.dropX, Y: top}, g.dropType)
	}
	if g.audioOn {
		g.cues.Drop()
	}
}

// consumeEvents acts as the external collaborators: economy (score tally)
// and audio/telemetry
func (g *Game) consumeEvents() {
	for _, ev := range g.queue.Consume() {
		switch ev.Type {
		case event.EventScore:
			p := ev.Payload.(event.ScorePayload)
			g.points += float64(p.PointsMultiplier) * 10
			if g.audioOn {
				g.cues.Score()
			}
		case event.EventMultiply:
			if g.audioOn {
				g.cues.Multiply()
			}
		}
	}
}

// toScreen maps a world position onto the terminal grid
func (g *Game) toScreen(p vmath.Vec3) (int, int) {
	a := &g.lv.Arena
	fx := (p.X - a.Min.X) / (a.Max.X - a.Min.X)
	fy := (a.Max.Y - p.Y) / (a.Max.Y - a.Min.Y)
	return int(fx * float32(g.width)), int(fy * float32(g.height-1))
}

// toWorld maps a terminal cell center back into world space (board plane)
func (g *Game) toWorld(x, y int) vmath.Vec3 {
	a := &g.lv.Arena
	fx := (float32(x) + 0.5) / float32(g.width)
	fy := (float32(y) + 0.5) / float32(g.height-1)
	return vmath.Vec3{
		X: a.Min.X + fx*(a.Max.X-a.Min.X),
		Y: a.Max.Y - fy*(a.Max.Y-a.Min.Y),
	}
}

func (g *Game) draw() {
	g.screen.Clear()

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	gateStyle := tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	goalStyle := tcell.StyleDefault.Foreground(tcell.ColorLime)

	// Static geometry: sample each cell against the obstacle and gate
	// tables on the board plane
	for y := 0; y < g.height-1; y++ {
		for x := 0; x < g.width; x++ {
			p := g.toWorld(x, y)
			for i := range g.lv.Obstacles {
				ob := &g.lv.Obstacles[i]
				local := ob.ToLocal(p)
				if local.X >= -ob.HalfExtents.X && local.X <= ob.HalfExtents.X &&
					local.Y >= -ob.HalfExtents.Y && local.Y <= ob.HalfExtents.Y {
					g.screen.SetContent(x, y, '▓', nil, wallStyle)
					break
				}
			}
			for i := range g.lv.Gates {
				gt := &g.lv.Gates[i]
				if p.X >= gt.Bounds.Min.X && p.X < gt.Bounds.Max.X &&
					p.Y >= gt.Bounds.Min.Y && p.Y < gt.Bounds.Max.Y {
					style, r := gateStyle, '='
					if gt.IsGoal() {
						style, r = goalStyle, '_'
					}
					g.screen.SetContent(x, y, r, nil, style)
					break
				}
			}
		}
	}

	// Bodies
	g.sim.Bodies(func(b *core.Body) {
		x, y := g.toScreen(b.Pos)
		if x < 0 || x >= g.width || y < 0 || y >= g.height-1 {
			return
		}
		r := 'o'
		if b.Asleep {
			r = '.'
		}
		g.screen.SetContent(x, y, r, nil, typeStyles[b.Type])
	})

	// Drop cursor
	cx, _ := g.toScreen(vmath.Vec3{X: g.dropX, Y: g.lv.Arena.Max.Y})
	g.screen.SetContent(cx, 0, 'v', nil, typeStyles[g.dropType])

	// HUD
	st := g.sim.Stats()
	hud := fmt.Sprintf(" bodies:%d points:%.0f scored:%d mult:%d dropped:%d type:%s  [←/→ aim, space drop, b burst, 1-5 type, q quit]",
		g.sim.Len(), g.points, st.Scored, st.Multiplied, st.Dropped, g.dropType)
	hudStyle := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range hud {
		if col >= g.width {
			break
		}
		g.screen.SetContent(col, g.height-1, r, nil, hudStyle)
		col++
	}

	g.screen.Show()
}

func (g *Game) run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case <-ticker.C:
			g.drops.Drain(g.sim, dropsPerTick)
			g.sim.Tick(parameter.FixedStep)
			g.consumeEvents()
			g.draw()
		}
	}
}

func (g *Game) cleanup() {
	if g.audioOn {
		g.cues.Close()
	}
	g.screen.Fini()
}

func main() {
	lv := level.Default()
	if len(os.Args) > 1 {
		loaded, err := level.Load(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "load level: %v\n", err)
			os.Exit(1)
		}
		lv = loaded
	}

	game, err := NewGame(lv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
