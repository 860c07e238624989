package testlogger

import (
	"log/slog"
	"sync"

	"github.com/roadrunner-server/endure/v2/dep"
	"github.com/roadrunner-server/errors"
	"github.com/roadrunner-server/testlogger/v4/recorder"
	"go.uber.org/zap"
)

const PluginName string = "testlogger"

type Plugin struct {
	mu  sync.RWMutex
	rec *recorder.Recorder
	log *zap.Logger
}

type Configurer interface {
	// UnmarshalKey takes a single key and unmarshal it into a Struct.
	UnmarshalKey(name string, out any) error
	// Has checks if config section exists.
	Has(name string) bool
}

// Logger is the RoadRunner logger contract other plugins collect.
type Logger interface {
	NamedLogger(name string) *zap.Logger
}

var _ Logger = (*Plugin)(nil)

func (p *Plugin) Init(cfg Configurer) error {
	const op = errors.Op("testlogger_plugin_init")

	conf := &recorder.Config{}
	// the section is optional, a recorder with defaults is fine for tests
	if cfg.Has(PluginName) {
		err := cfg.UnmarshalKey(PluginName, conf)
		if err != nil {
			return errors.E(op, err)
		}
	}

	conf.InitDefault()

	// diagnostics go to stderr, recording them would pollute the assertions
	log, err := zap.NewProduction()
	if err != nil {
		return errors.E(op, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.log = log.Named(PluginName)
	p.rec = recorder.New(conf, p.log)

	p.log.Debug("recorder was initialized", zap.Bool("interpolate_on_log", conf.InterpolateOnLog), zap.String("channel", conf.Channel))
	return nil
}

func (p *Plugin) Name() string {
	return PluginName
}

// Provides declares the logger factory for the plugins which collect Logger.
func (p *Plugin) Provides() []*dep.Out {
	return []*dep.Out{
		dep.Bind((*Logger)(nil), p.ServiceLogger),
	}
}

// ServiceLogger returns the plugin as the Logger implementation.
func (p *Plugin) ServiceLogger() Logger {
	return p
}

// NamedLogger returns a zap logger whose records carry name as the channel.
func (p *Plugin) NamedLogger(name string) *zap.Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rec.ZapLogger(name)
}

// NamedSlogLogger returns a slog logger whose records carry name as the channel.
func (p *Plugin) NamedSlogLogger(name string) *slog.Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rec.SlogLogger(name)
}

// Recorder returns the recorder shared by all loggers of the plugin.
func (p *Plugin) Recorder() *recorder.Recorder {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rec
}

// Reset drops all recorded entries, it satisfies the RoadRunner resetter contract.
func (p *Plugin) Reset() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	p.rec.Reset()
	return nil
}
