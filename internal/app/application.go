package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rlaunch/internal/search"
)

// Options wires the launcher to its collaborators. Screen and Opener are
// created when nil; tests pass a simulation screen and a fake opener.
type Options struct {
	Searcher *search.ShortcutSearcher
	Roots    []string
	Screen   tcell.Screen
	Opener   Opener
	Logger   *slog.Logger
}

// Application is the interactive prompt around the shortcut search.
type Application struct {
	screen     tcell.Screen
	searcher   *search.ShortcutSearcher
	roots      []string
	opener     Opener
	log        *slog.Logger
	renderer   *renderer
	state      *promptState
	generation int
	runJob     func(searchJob)
	shouldQuit bool
	launched   string
}

// NewApplication initializes the terminal and the prompt state.
func NewApplication(opts Options) (*Application, error) {
	if opts.Searcher == nil {
		return nil, errors.New("app: searcher is required")
	}

	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	opener := opts.Opener
	if opener == nil {
		opener = DetectOpener()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	w, h := screen.Size()
	app := &Application{
		screen:   screen,
		searcher: opts.Searcher,
		roots:    append([]string(nil), opts.Roots...),
		opener:   opener,
		log:      logger,
		renderer: &renderer{screen: screen},
		state:    &promptState{Width: w, Height: h},
	}
	return app, nil
}

// Close releases the terminal. It is safe to call more than once.
func (app *Application) Close() error {
	if app.screen != nil {
		app.screen.Fini()
		app.screen = nil
	}
	return nil
}

// Launched returns the location opened before the prompt exited, if any.
func (app *Application) Launched() string {
	return app.launched
}
