// Command dndterm is a terminal card table driven by the dnd engine: drag
// cards with the mouse into the slots of their suit. Cards dropped anywhere
// else slide back.
//
// Usage:
//
//	dndterm [-table defaults.yaml] [-rule accept.star] [-log dnd.log] [-mute]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/dnd"
	"github.com/phanxgames/dnd/rules"
)

func main() {
	tablePath := flag.String("table", "", "YAML file with drag-and-drop defaults")
	rulePath := flag.String("rule", "", "Starlark accept rule for the joker slot")
	logPath := flag.String("log", "", "write engine debug output to this file")
	mute := flag.Bool("mute", false, "disable drop tones")
	flag.Parse()

	if err := run(*tablePath, *rulePath, *logPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "dndterm: %v\n", err)
		os.Exit(1)
	}
}

func run(tablePath, rulePath, logPath string, mute bool) error {
	if tablePath != "" {
		f, err := os.Open(tablePath)
		if err != nil {
			return err
		}
		t, err := dnd.LoadTable(f)
		f.Close()
		if err != nil {
			return err
		}
		dnd.SetDefaultTable(t)
	}

	var joker dnd.Accept
	if rulePath != "" {
		r, err := rules.CompileFile(rulePath)
		if err != nil {
			return err
		}
		joker = r.Accept()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	var sound feedback
	if !mute {
		t, err := newTones()
		if err != nil {
			// Non-fatal, the table works without sound
			log.Printf("audio initialization failed: %v", err)
		} else {
			defer t.close()
			sound = t
		}
	}

	w, h := screen.Size()
	b := newBoard(w, h, sound)
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return err
		}
		defer f.Close()
		b.mgr.SetDebugOutput(f)
		b.mgr.SetDebugMode(true)
	}
	deal(b, joker)

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
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

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventMouse:
				x, y := ev.Position()
				b.mouse(x, y, ev.Buttons())
			case *tcell.EventResize:
				w, h := screen.Size()
				b.resize(w, h)
				screen.Sync()
			}
		case <-ticker.C:
			b.frame()
			screen.Clear()
			b.draw(screen)
			screen.Show()
		}
	}
}
