// Package app wires the editor core to a terminal, configuration, Lua
// scripts and the file system, and runs the event loop.
package app

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/modeline/internal/action"
	"github.com/dshills/modeline/internal/config"
	"github.com/dshills/modeline/internal/editor"
	"github.com/dshills/modeline/internal/engine/buffer"
	"github.com/dshills/modeline/internal/frame"
	"github.com/dshills/modeline/internal/input"
	"github.com/dshills/modeline/internal/input/command"
	"github.com/dshills/modeline/internal/input/macro"
	"github.com/dshills/modeline/internal/plugin/lua"
	"github.com/dshills/modeline/internal/renderer"
	"github.com/dshills/modeline/internal/renderer/backend"
)

// DefaultTickInterval is how often the screen is redrawn without input, so
// notifications expire on time.
const DefaultTickInterval = 250 * time.Millisecond

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty means config.DefaultPath().
	ConfigPath string

	// Files are opened one frame each. With none, a scratch frame is used.
	Files []string

	// LogLevel and LogFile override the configuration when set.
	LogLevel string
	LogFile  string

	// LogOutput replaces the log file entirely.
	LogOutput io.Writer

	// Watch reloads the configuration file when it changes.
	Watch bool

	// Backend is the terminal. Nil means the controlling terminal.
	Backend backend.Backend

	// TickInterval overrides DefaultTickInterval.
	TickInterval time.Duration
}

// Application is the running editor.
type Application struct {
	opts       Options
	configPath string
	cfg        *config.Config

	logger  *Logger
	logFile io.Closer
	session uuid.UUID

	backend  backend.Backend
	renderer *renderer.Renderer

	registry *command.Registry
	plugins  *lua.Host
	editor   *editor.Editor
	frames   *frame.Manager

	now func() time.Time
}

// New loads configuration, opens files and builds every component. The
// terminal is not touched until Run.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:       opts,
		configPath: opts.ConfigPath,
		now:        time.Now,
	}
	if app.configPath == "" {
		app.configPath = config.DefaultPath()
	}

	cfg, err := config.Load(app.configPath)
	if err != nil {
		return nil, err
	}
	app.applyOverrides(cfg)
	app.cfg = cfg

	if err := app.initLogger(); err != nil {
		return nil, err
	}
	app.logger.Info("starting with config %s", app.configPath)

	app.backend = opts.Backend
	if app.backend == nil {
		term, err := backend.NewTerminal()
		if err != nil {
			app.Close()
			return nil, NewOperationError("open", "terminal", err)
		}
		app.backend = term
	}
	app.renderer = renderer.New(app.backend, renderer.WithTabWidth(cfg.Editor.TabWidth))

	app.registry = command.NewRegistry()
	command.RegisterBuiltins(app.registry)
	app.plugins = lua.NewHost(app.registry, lua.WithLogger(app.logger.WithComponent("lua")))
	app.loadScripts()

	km, err := cfg.BuildKeymap()
	if err != nil {
		app.Close()
		return nil, err
	}
	resolver := input.NewResolver(app.registry, input.WithKeymap(km))
	macros := macro.New(resolver,
		macro.WithLogLimit(cfg.Macro.LogLimit),
		macro.WithLogger(app.logger.WithComponent("macro")),
	)

	app.frames = frame.NewManager()
	if err := app.openFiles(opts.Files); err != nil {
		app.Close()
		return nil, err
	}

	app.editor = editor.New(macros, app.frames,
		editor.WithLogger(app.logger.WithComponent("editor")),
		editor.WithTabs(cfg.Editor.TabInsertsSpaces, cfg.Editor.TabWidth),
	)
	return app, nil
}

func (app *Application) applyOverrides(cfg *config.Config) {
	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Logging.File = app.opts.LogFile
	}
}

func (app *Application) initLogger() error {
	out := app.opts.LogOutput
	if out == nil {
		path := app.cfg.Logging.File
		if path == "" {
			path = DefaultLogPath()
		}
		f, err := OpenLogFile(path)
		if err != nil {
			return err
		}
		app.logFile = f
		out = f
	}
	root := NewLogger(ParseLogLevel(app.cfg.Logging.Level), out, "modeline")
	app.logger, app.session = root.WithSession()
	return nil
}

// loadScripts runs every configured Lua script. A failing script is logged
// and reported on the status line; the others still load.
func (app *Application) loadScripts() {
	for _, path := range app.cfg.Plugins.Scripts {
		if err := app.plugins.Load(path); err != nil {
			app.logger.Warn("lua script: %v", err)
			app.notify(action.Notify(action.LevelError, err.Error(), action.LongNotice))
			continue
		}
		app.logger.Debug("loaded lua script %s", path)
	}
}

// openFiles creates one frame per path. Missing files become empty
// buffers that are created on first write.
func (app *Application) openFiles(paths []string) error {
	if len(paths) == 0 {
		id := app.frames.AddWindow()
		return app.frames.FillWindow(id, buffer.New())
	}
	for _, path := range paths {
		buf, err := readFile(path)
		if err != nil {
			return err
		}
		app.frames.Open(buf, path)
		app.logger.Debug("opened %s", path)
	}
	return app.frames.Focus(app.frames.IDs()[0])
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config { return app.cfg }

// Editor returns the editor core.
func (app *Application) Editor() *editor.Editor { return app.editor }

// Registry returns the command registry.
func (app *Application) Registry() *command.Registry { return app.registry }

// Renderer returns the renderer.
func (app *Application) Renderer() *renderer.Renderer { return app.renderer }

// Session returns the id tagging this run's log lines.
func (app *Application) Session() uuid.UUID { return app.session }

// Logger returns the application logger.
func (app *Application) Logger() *Logger { return app.logger }

// Close releases the Lua state and the log file.
func (app *Application) Close() error {
	if app.plugins != nil {
		app.plugins.Close()
	}
	if app.logFile != nil {
		err := app.logFile.Close()
		app.logFile = nil
		return err
	}
	return nil
}
