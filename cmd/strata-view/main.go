// Command strata-view displays a canvas document on the terminal,
// playing back animation frames for layers that have them.
//
// Usage:
//
//	strata-view [-debug] file.strata
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/strata/engine"
	"github.com/lixenwraith/strata/layer"
	"github.com/lixenwraith/strata/render"
)

func main() {
	debug := flag.Bool("debug", false, "development logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-debug] file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var l *zap.Logger
	var err error
	if *debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer l.Sync() //nolint:errcheck
	zap.ReplaceGlobals(l)

	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		l.Fatal("read document", zap.String("path", path), zap.Error(err))
	}

	ed := engine.New()
	if err := ed.Load(data); err != nil {
		l.Fatal("decode document", zap.String("path", path), zap.Error(err))
	}
	l.Info("document loaded",
		zap.String("path", path),
		zap.Int("layers", len(ed.State().Layers)))

	screen, err := tcell.NewScreen()
	if err != nil {
		l.Fatal("open screen", zap.Error(err))
	}
	if err := screen.Init(); err != nil {
		l.Fatal("init screen", zap.Error(err))
	}
	defer screen.Fini()

	if err := ed.SetTarget(render.NewScreen(screen)); err != nil {
		l.Error("attach target", zap.Error(err))
		return
	}

	if err := run(ed, screen); err != nil {
		l.Error("viewer", zap.Error(err))
	}
}

// run drives the event loop: animation ticks advance every multi-frame
// layer, q or Escape quits.
func run(ed *engine.Editor, screen tcell.Screen) error {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Duration(frameInterval(ed.State())) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if err := stepFrames(ed); err != nil {
				return err
			}
		}
	}
}

// frameInterval returns the playback tick in milliseconds
func frameInterval(st *layer.State) int {
	for _, l := range st.Layers {
		if l.Kind == layer.KindDrawn && len(l.Frames) > 1 {
			return l.FrameDurationMs
		}
	}
	return layer.DefaultFrameDurationMs
}

// stepFrames advances every animated layer by one frame and flushes
func stepFrames(ed *engine.Editor) error {
	animated := false
	for _, l := range ed.State().Layers {
		if l.Kind == layer.KindDrawn && len(l.Frames) > 1 {
			l.CurrentFrame = (l.CurrentFrame + 1) % len(l.Frames)
			animated = true
		}
	}
	if !animated {
		return nil
	}
	return ed.Flush()
}
