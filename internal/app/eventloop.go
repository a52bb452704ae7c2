package app

import (
	"context"
	"errors"
	"time"

	"github.com/dshills/modeline/internal/action"
	"github.com/dshills/modeline/internal/config"
	"github.com/dshills/modeline/internal/renderer/backend"
)

// Run takes over the terminal and processes events until the user quits,
// the last frame closes, the terminal goes away or ctx is done.
func (app *Application) Run(ctx context.Context) error {
	if err := app.backend.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer app.backend.Shutdown()
	app.renderer.Resize(app.backend.Size())

	var (
		configs <-chan *config.Config
		errs    <-chan error
	)
	if app.opts.Watch && app.configPath != "" {
		w, err := config.NewWatcher(app.configPath)
		if err != nil {
			app.logger.Warn("config watcher disabled: %v", err)
		} else {
			defer w.Close()
			configs, errs = w.Configs(), w.Errors()
		}
	}

	done := make(chan struct{})
	defer close(done)
	events := make(chan backend.Event)
	go pollEvents(app.backend, events, done)

	tick := app.opts.TickInterval
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	app.logger.Info("event loop started")
	app.draw()
	for {
		select {
		case <-ctx.Done():
			app.logger.Info("context done: %v", ctx.Err())
			return nil
		case ev, ok := <-events:
			if !ok {
				app.logger.Info("terminal closed")
				return nil
			}
			if err := app.handleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					app.logger.Info("quit")
					return nil
				}
				return err
			}
		case cfg := <-configs:
			app.reload(cfg)
		case err := <-errs:
			app.logger.Warn("config reload: %v", err)
			app.notify(action.Notify(action.LevelError, err.Error(), action.LongNotice))
		case <-ticker.C:
		}
		app.draw()
	}
}

// pollEvents forwards backend events until the backend closes or done is
// closed.
func pollEvents(b backend.Backend, out chan<- backend.Event, done <-chan struct{}) {
	defer close(out)
	for {
		ev := b.PollEvent()
		if ev.Type == backend.EventClosed {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent feeds one terminal event through the editor and dispatches
// the resulting actions. It returns ErrQuit when the application should
// exit.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		actions, err := app.editor.HandleKey(ev.Key)
		if err != nil {
			app.logger.Debug("key %s: %v", ev.Key, err)
		}
		return app.dispatch(actions)
	case backend.EventResize:
		return app.dispatch([]action.Action{action.Resize{Width: ev.Width, Height: ev.Height}})
	default:
		return nil
	}
}

func (app *Application) draw() {
	app.renderer.Draw(app.editor, app.now())
}
