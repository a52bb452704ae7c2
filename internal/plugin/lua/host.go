package lua

import (
	"errors"
	"fmt"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/modeline/internal/action"
	"github.com/dshills/modeline/internal/input/command"
)

// ModuleName is the global table scripts use to talk to the editor.
const ModuleName = "modeline"

// Logger receives debug messages about script loading.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Host loads scripts into one Lua state and registers their commands.
type Host struct {
	state    *State
	registry *command.Registry
	logger   Logger

	// source is the script currently being loaded.
	source string
}

// Option configures a Host.
type Option func(*hostConfig)

type hostConfig struct {
	logger  Logger
	timeout time.Duration
}

// WithLogger sets the host's logger.
func WithLogger(l Logger) Option {
	return func(c *hostConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTimeout bounds each script load and command call.
func WithTimeout(d time.Duration) Option {
	return func(c *hostConfig) {
		c.timeout = d
	}
}

// NewHost creates a host that registers script commands into registry.
func NewHost(registry *command.Registry, opts ...Option) *Host {
	cfg := hostConfig{logger: nopLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Host{
		state:    NewState(WithExecutionTimeout(cfg.timeout)),
		registry: registry,
		logger:   cfg.logger,
	}
	h.install()
	return h
}

func (h *Host) install() {
	L := h.state.L
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"command": h.luaCommand,
		"quit":    actionConstructor(KindQuit),
		"write":   actionConstructor(KindWrite),
		"close":   actionConstructor(KindClose),
		"notify":  luaNotify,
	})
	L.SetGlobal(ModuleName, mod)
}

// Load runs the script at path. Commands the script registered on a
// previous load are removed first, so Load also reloads.
func (h *Host) Load(path string) error {
	return h.load(path, func() error { return h.state.DoFile(path) })
}

// LoadString runs code as if it were a script named source.
func (h *Host) LoadString(source, code string) error {
	return h.load(source, func() error { return h.state.DoString(code) })
}

func (h *Host) load(source string, run func() error) error {
	if removed := h.registry.UnregisterBySource(source); removed > 0 {
		h.logger.Debug("unregistered %d commands from %s", removed, source)
	}

	h.source = source
	defer func() { h.source = "" }()

	if err := run(); err != nil {
		return fmt.Errorf("load %s: %w", source, err)
	}
	return nil
}

// Close releases the Lua state. Commands already registered fail with
// ErrStateClosed when run.
func (h *Host) Close() error {
	return h.state.Close()
}

// luaCommand implements modeline.command(name, description, fn).
func (h *Host) luaCommand(L *lua.LState) int {
	name := L.CheckString(1)
	desc := L.OptString(2, "")
	fn := L.CheckFunction(3)

	source := h.source
	if source == "" {
		source = ModuleName
	}
	cmd := &scriptCommand{state: h.state, fn: fn}
	if err := h.registry.RegisterFrom(source, name, cmd, desc); err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	h.logger.Debug("registered lua command %q from %s", name, source)
	return 0
}

// scriptCommand runs a Lua function as a command.
type scriptCommand struct {
	state *State
	fn    *lua.LFunction
}

func (c *scriptCommand) Act(text string) ([]action.Action, error) {
	args := strings.TrimSpace(strings.TrimPrefix(text, command.Name(text)))
	ret, err := c.state.Call(c.fn, lua.LString(args))
	if err != nil {
		// Drop the traceback; the message goes to the status line.
		var apiErr *lua.ApiError
		if errors.As(err, &apiErr) && apiErr.Object != nil {
			return nil, errors.New(apiErr.Object.String())
		}
		return nil, err
	}
	return ToActions(ret)
}
