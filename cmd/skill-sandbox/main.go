package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/skillcast/audio"
	"github.com/lixenwraith/skillcast/config"
	"github.com/lixenwraith/skillcast/engine"
	"github.com/lixenwraith/skillcast/parameter"
	"github.com/lixenwraith/skillcast/physics"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	debug := flag.Bool("debug", false, "write a development log to the log directory")
	noSound := flag.Bool("nosound", false, "disable audio cues")
	flag.Parse()

	if err := run(*configPath, *debug, *noSound); err != nil {
		fmt.Fprintf(os.Stderr, "skill-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, debug, noSound bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	catalog.SetDefaultBeamRange(cfg.Beam.DefaultRange)

	logger, err := setupLogging(debug || cfg.Log.Development, cfg.Log.Dir, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	world := engine.NewWorld()
	world.Resources.Config = cfg
	world.Resources.Log = logger
	world.Resources.RayCaster = physics.NewSceneRayCaster(world)

	sc := newScene(world, catalog)

	if cfg.Sandbox.Audio && !noSound {
		player := audio.NewPlayer(audio.DefaultSettings())
		if err := player.Init(); err != nil {
			// Non-fatal, the sandbox runs silent
			logger.Warn("audio init failed", zap.Error(err))
		} else {
			defer player.Close()
			world.AddEventHandler(audio.NewCueHandler(player))
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	v := &view{screen: screen, cell: cfg.Sandbox.CellSize}

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(cfg.Sandbox.Tick)
	defer ticker.Stop()
	last := time.Now()

	logger.Info("sandbox started",
		zap.Strings("skills", sc.skills),
		zap.Duration("tick", cfg.Sandbox.Tick))

	for {
		select {
		case ev := <-eventChan:
			if !handleInput(sc, ev) {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > parameter.MaxDeltaTime {
				dt = parameter.MaxDeltaTime
			}
			world.Update(dt)
			v.draw(sc)
		}
	}
}

// handleInput applies one terminal event to the scene, false quits
func handleInput(sc *scene, ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		sc.moveCursor(0, -cursorStep)
	case tcell.KeyDown:
		sc.moveCursor(0, cursorStep)
	case tcell.KeyLeft:
		sc.moveCursor(-cursorStep, 0)
	case tcell.KeyRight:
		sc.moveCursor(cursorStep, 0)
	case tcell.KeyRune:
		r := key.Rune()
		switch {
		case r >= '1' && r <= '9':
			sc.castSkill(int(r - '1'))
		case r == 'w':
			sc.walk(mgl64.Vec3{0, 0, -1})
		case r == 's':
			sc.walk(mgl64.Vec3{0, 0, 1})
		case r == 'a':
			sc.walk(mgl64.Vec3{-1, 0, 0})
		case r == 'd':
			sc.walk(mgl64.Vec3{1, 0, 0})
		case r == ' ':
			sc.walk(mgl64.Vec3{})
		case r == 'q':
			sc.turn(turnStep)
		case r == 'e':
			sc.turn(-turnStep)
		case r == 'm':
			sc.walkToCursor()
		case r == 't':
			sc.lockOn = !sc.lockOn
		case r == 'x':
			sc.clearSkills()
		}
	}
	return true
}
