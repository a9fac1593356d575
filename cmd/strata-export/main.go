// Command strata-export converts a canvas document into ANSI text, plain
// text, or HTML on stdout. For animated documents -all emits one ANSI
// block per frame separated by form feeds, and -play animates the frames
// in place on the terminal.
//
// Usage:
//
//	strata-export [-format ansi|text|html] [-all] [-play] [-loops n] file.strata
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/strata/compose"
	"github.com/lixenwraith/strata/core"
	"github.com/lixenwraith/strata/export"
	"github.com/lixenwraith/strata/savefile"
	"github.com/lixenwraith/strata/terminal"
)

func main() {
	format := flag.String("format", "ansi", "output format: ansi, text, html")
	all := flag.Bool("all", false, "emit every animation frame (ansi only)")
	play := flag.Bool("play", false, "animate frames in place on the terminal")
	loops := flag.Int("loops", 3, "animation repetitions for -play")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-format ansi|text|html] [-all] [-play] [-loops n] file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	l, err := zap.NewProduction()
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
	st, version, err := savefile.Decode(data)
	if err != nil {
		l.Fatal("decode document", zap.String("path", path), zap.Error(err))
	}
	l.Info("document decoded",
		zap.String("path", path),
		zap.Int("version", version),
		zap.Int("layers", len(st.Layers)))

	if *play {
		frames, duration := export.Frames(st)
		l.Info("playing animation",
			zap.Int("frames", len(frames)),
			zap.Int("frameDurationMs", duration),
			zap.Int("loops", *loops))
		if err := playFrames(frames, duration, *loops); err != nil {
			l.Fatal("play animation", zap.Error(err))
		}
		return
	}

	if *all && *format == "ansi" {
		frames, duration := export.Frames(st)
		l.Info("exporting animation",
			zap.Int("frames", len(frames)),
			zap.Int("frameDurationMs", duration))
		for i, g := range frames {
			if i > 0 {
				fmt.Print("\f")
			}
			fmt.Print(export.ANSI(g))
		}
		return
	}

	grid := compose.CompositeGrid(st.Layers)
	switch *format {
	case "ansi":
		fmt.Print(export.ANSI(grid))
	case "text":
		fmt.Print(export.Text(grid))
	case "html":
		fmt.Print(export.HTML(grid))
	default:
		l.Fatal("unknown format", zap.String("format", *format))
	}
}

// playFrames animates the composited frames in place, sending only the cell
// diff between consecutive frames after the initial full write
func playFrames(frames []core.Grid, durationMs, loops int) error {
	w := terminal.NewWriter(os.Stdout)
	defer w.Close() //nolint:errcheck

	if err := w.Attach(frames[0]); err != nil {
		return err
	}
	tick := time.Duration(durationMs) * time.Millisecond
	prev := frames[0]
	for loop := 0; loop < loops; loop++ {
		for i, g := range frames {
			if loop == 0 && i == 0 {
				continue
			}
			time.Sleep(tick)
			if err := w.Apply(compose.DiffGrids(prev, g)); err != nil {
				return err
			}
			prev = g
		}
	}
	time.Sleep(tick)
	return nil
}
