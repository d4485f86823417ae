package app

import (
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rlaunch/internal/search"
)

// searchEvent carries finished search results back into the event loop.
type searchEvent struct {
	tcell.EventTime
	generation int
	results    []search.SearchResult
	stats      search.ScanStats
}

type searchJob func() *searchEvent

// Run shows the prompt until the user launches something or closes it.
func (app *Application) Run() {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)

	screen := app.screen
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	app.requestSearch()
	app.renderer.render(app.state)

	for !app.shouldQuit {
		select {
		case ev := <-events:
			if app.handleEvent(ev) && !app.shouldQuit {
				app.renderer.render(app.state)
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				app.renderer.render(app.state)
			}
		}
	}
}

// handleEvent applies ev to the prompt and reports whether a redraw is needed.
func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventResize:
		app.state.Width, app.state.Height = ev.Size()
		app.screen.Sync()
		return true
	case *searchEvent:
		if ev.generation != app.generation {
			return false
		}
		app.state.setResults(ev.results, ev.stats)
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		app.shouldQuit = true
	case tcell.KeyEscape:
		if app.state.clearQuery() {
			app.requestSearch()
		} else {
			app.shouldQuit = true
		}
	case tcell.KeyEnter:
		app.launchSelected()
	case tcell.KeyUp, tcell.KeyCtrlP, tcell.KeyBacktab:
		app.state.moveSelection(-1)
	case tcell.KeyDown, tcell.KeyCtrlN, tcell.KeyTab:
		app.state.moveSelection(1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if app.state.backspace() {
			app.requestSearch()
		}
	case tcell.KeyCtrlU:
		if app.state.clearQuery() {
			app.requestSearch()
		}
	case tcell.KeyCtrlW:
		if app.state.deleteWord() {
			app.requestSearch()
		}
	case tcell.KeyCtrlZ:
		app.suspendToShell()
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) != 0 {
			return false
		}
		app.state.insertRune(ev.Rune())
		app.requestSearch()
	default:
		return false
	}
	return true
}

// requestSearch runs the current query off the event loop. Results from an
// older generation are dropped when they arrive.
func (app *Application) requestSearch() {
	app.generation++
	generation := app.generation
	query := app.state.Query
	searcher := app.searcher
	roots := app.roots

	app.state.Pending = true
	app.state.Status = ""
	app.schedule(func() *searchEvent {
		results, stats := searcher.SearchWithStats(query, roots)
		ev := &searchEvent{generation: generation, results: results, stats: stats}
		ev.SetEventNow()
		return ev
	})
}

func (app *Application) schedule(job searchJob) {
	if app.runJob != nil {
		app.runJob(job)
		return
	}
	screen := app.screen
	logger := app.log
	go func() {
		ev := job()
		if err := screen.PostEvent(ev); err != nil {
			logger.Warn("search_result_dropped", slog.Int("generation", ev.generation), slog.String("error", err.Error()))
		}
	}()
}

func (app *Application) launchSelected() {
	result, ok := app.state.selected()
	if !ok || app.state.Pending {
		return
	}
	if err := app.opener.Open(result.Location); err != nil {
		app.log.Warn("launch_failed", slog.String("path", result.Location), slog.String("error", err.Error()))
		app.state.Status = "launch failed: " + err.Error()
		return
	}
	app.log.Info("launched", slog.String("name", result.DisplayName), slog.String("path", result.Location))
	app.launched = result.Location
	app.shouldQuit = true
}
