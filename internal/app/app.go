package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/betterrest/internal/bedtime"
	"github.com/five82/betterrest/internal/config"
	"github.com/five82/betterrest/internal/estimator"
	"github.com/five82/betterrest/internal/logging"
	"github.com/five82/betterrest/internal/prefs"
	"github.com/five82/betterrest/internal/state"
	"github.com/five82/betterrest/internal/ui"
)

// Options configure the BetterRest application. Empty fields fall back to the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/betterrest/prefs.toml
	ModelPath  string
	LogFile    string
	LogLevel   string
}

// Env holds everything wired at startup.
type Env struct {
	Config     config.Config
	Prefs      prefs.Prefs
	Logger     *zap.Logger
	Calculator *bedtime.Calculator
}

// Setup loads configuration, builds the logger and the estimator. A
// coefficient table that cannot be loaded is not fatal: it is logged and every
// calculation then fails with estimator.ErrComputation.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.ModelPath != "" {
		cfg.ModelPath = opts.ModelPath
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	model, err := loadModel(cfg.ModelPath)
	if err != nil {
		logger.Error("sleep model unavailable", zap.String("path", cfg.ModelPath), zap.Error(err))
	} else {
		logger.Info("sleep model loaded",
			zap.String("name", model.Name),
			zap.String("version", model.Version),
			zap.String("path", cfg.ModelPath))
	}

	return &Env{
		Config:     cfg,
		Prefs:      prefs.Load(opts.PrefsPath),
		Logger:     logger,
		Calculator: bedtime.NewCalculator(estimator.New(model), logger.Named("bedtime")),
	}, nil
}

func loadModel(path string) (*estimator.Model, error) {
	if path == "" {
		return estimator.DefaultModel()
	}
	return estimator.LoadModel(path)
}

// DefaultInputs returns the configured starting inputs on now's date.
func (e *Env) DefaultInputs(now time.Time) (bedtime.Inputs, error) {
	wake, err := bedtime.ParseWake(e.Config.DefaultWake, now)
	if err != nil {
		return bedtime.Inputs{}, err
	}
	return bedtime.Inputs{
		Wake:      wake,
		SleepGoal: e.Config.DefaultSleep,
		Coffee:    e.Config.DefaultCoffee,
	}, nil
}

// Close flushes the logger.
func (e *Env) Close() {
	_ = e.Logger.Sync()
}

// Run boots the BetterRest TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	defaults, err := env.DefaultInputs(time.Now())
	if err != nil {
		return fmt.Errorf("default inputs: %w", err)
	}

	env.Logger.Info("starting tui", zap.String("theme", env.Prefs.Theme), zap.String("clock", string(env.Prefs.Clock)))

	return ui.Run(ui.Options{
		Context:    ctx,
		Calculator: env.Calculator,
		Store:      &state.Store{},
		Defaults:   defaults,
		ThemeName:  env.Prefs.Theme,
		Clock:      env.Prefs.Clock,
		PrefsPath:  opts.PrefsPath,
		Logger:     env.Logger.Named("ui"),
	})
}
