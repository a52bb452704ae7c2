package app

import (
	"errors"

	"github.com/dshills/modeline/internal/action"
	"github.com/dshills/modeline/internal/config"
)

// Messages the host shows on its own behalf.
const (
	MsgNoFileName = "No file name"
	MsgReloaded   = "Configuration reloaded"
)

// dispatch performs actions in order. A failed write drops the rest of the
// batch, so ":wq" does not quit after an error. It returns ErrQuit when
// the application should exit.
func (app *Application) dispatch(actions []action.Action) error {
	for _, a := range actions {
		app.logger.Debug("action %s", a)
		switch a := a.(type) {
		case action.Quit:
			return ErrQuit

		case action.WriteActiveBuffer:
			if err := app.writeActive(); err != nil {
				app.logger.Warn("write: %v", err)
				msg := err.Error()
				if errors.Is(err, ErrNoFileName) {
					msg = MsgNoFileName
				}
				app.notify(action.Notify(action.LevelError, msg, action.LongNotice))
				return nil
			}

		case action.CloseActiveBuffer:
			id, ok := app.frames.ActiveID()
			if !ok {
				return ErrQuit
			}
			if err := app.frames.RemoveWindow(id); err != nil {
				return err
			}
			app.renderer.Forget(id)
			if app.frames.Len() == 0 {
				return ErrQuit
			}

		case action.NextBuffer:
			if err := app.frames.Next(); err != nil {
				app.logger.Debug("next buffer: %v", err)
			}

		case action.AttachNotification:
			app.notify(a)

		case action.Resize:
			app.renderer.Resize(a.Width, a.Height)
		}
	}
	return nil
}

// notify shows a notification. A configured notification timeout replaces
// the duration the action asked for.
func (app *Application) notify(a action.AttachNotification) {
	if d := app.cfg.Editor.NotificationTimeout.Duration; d > 0 {
		a.Duration = d
	}
	app.renderer.Notify(a, app.now())
}

// reload applies a configuration delivered by the watcher. The keymap,
// tabs, log level and scripts change; frames and macros are untouched.
func (app *Application) reload(cfg *config.Config) {
	app.applyOverrides(cfg)
	km, err := cfg.BuildKeymap()
	if err != nil {
		app.logger.Warn("reload: %v", err)
		app.notify(action.Notify(action.LevelError, err.Error(), action.LongNotice))
		return
	}

	app.cfg = cfg
	app.editor.Resolver().SetKeymap(km)
	app.editor.SetTabs(cfg.Editor.TabInsertsSpaces, cfg.Editor.TabWidth)
	app.renderer.SetTabWidth(cfg.Editor.TabWidth)
	app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	app.loadScripts()

	app.logger.Info("configuration reloaded")
	app.notify(action.Notify(action.LevelInfo, MsgReloaded, action.ShortNotice))
}
