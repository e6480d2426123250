package app

import (
	"context"
	"errors"
	"io"

	"github.com/doeshing/dpc-go/internal/application/assessment"
	"github.com/doeshing/dpc-go/internal/application/doctor"
	"github.com/doeshing/dpc-go/internal/classifier"
	"github.com/doeshing/dpc-go/internal/domain"
	"github.com/doeshing/dpc-go/internal/infrastructure/config"
	"github.com/doeshing/dpc-go/internal/infrastructure/history"
	"github.com/doeshing/dpc-go/internal/pkg/logger"
	"github.com/doeshing/dpc-go/internal/ports"
)

// Options controls how the container is built.
type Options struct {
	Verbose    bool
	ConfigPath string
	Clipboard  ports.Clipboard
	Logger     ports.Logger
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config            domain.Config
	ConfigProvider    ports.ConfigProvider
	ConfigLoader      *config.FileLoader
	Classifier        ports.Classifier
	AssessmentService *assessment.Service
	DoctorService     *doctor.Service
	HistoryStore      ports.HistoryRepository
	Clipboard         ports.Clipboard
	Logger            ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		zl, err := logger.New(opts.Verbose)
		if err != nil {
			return nil, err
		}
		log = zl
	}

	var historyStore ports.HistoryRepository
	if cfg.History.Enabled {
		store := history.NewSQLiteStore(cfg.History.Path)
		if store.Degraded() {
			log.Warn("sqlite history unavailable, using jsonl", map[string]interface{}{"path": store.Path()})
		}
		historyStore = store
	}

	rules := classifier.New()

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Classifier:     rules,
		AssessmentService: &assessment.Service{
			Classifier:   rules,
			HistoryStore: historyStore,
			Clipboard:    opts.Clipboard,
			Logger:       log,
		},
		DoctorService: &doctor.Service{
			ConfigProvider: cfgLoader,
			Classifier:     rules,
			HistoryStore:   historyStore,
			Clipboard:      opts.Clipboard,
		},
		HistoryStore: historyStore,
		Clipboard:    opts.Clipboard,
		Logger:       log,
	}, nil
}

// Close releases resources held by the container's adapters.
func (c *Container) Close() error {
	var errs []error
	if closer, ok := c.HistoryStore.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	if syncer, ok := c.Logger.(interface{ Sync() error }); ok {
		// Sync on a terminal stderr returns EINVAL.
		_ = syncer.Sync()
	}
	return errors.Join(errs...)
}
