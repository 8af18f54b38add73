// Package di provides dependency injection container
package di

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ssargent/kenshimod/pkg/config"
	"github.com/ssargent/kenshimod/pkg/store"
)

// StoreFactory creates the mod store the commands operate on
type StoreFactory interface {
	CreateModStore(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) *store.ModStore
}

type modStoreFactory struct{}

// NewStoreFactory returns the factory that builds a store from configuration
func NewStoreFactory() StoreFactory {
	return modStoreFactory{}
}

func (modStoreFactory) CreateModStore(cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) *store.ModStore {
	return store.NewModStore(store.ModStoreConfig{
		Backup:        cfg.Store.Backup,
		Fsync:         cfg.Store.Fsync,
		SummaryChars:  cfg.Summary.MaxChars,
		SampleRecords: cfg.Summary.SampleRecords,
		Logger:        logger,
		Registerer:    reg,
	})
}

// Container holds all the dependencies for the application
type Container struct {
	storeFactory StoreFactory
	registry     *prometheus.Registry
	registered   bool
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	return &Container{
		storeFactory: NewStoreFactory(),
		registry:     prometheus.NewRegistry(),
	}
}

// GetStoreFactory returns the store factory
func (c *Container) GetStoreFactory() StoreFactory {
	return c.storeFactory
}

// SetStoreFactory allows overriding the store factory (for testing)
func (c *Container) SetStoreFactory(factory StoreFactory) {
	c.storeFactory = factory
}

// Registry returns the registry store metrics are registered with
func (c *Container) Registry() *prometheus.Registry {
	return c.registry
}

// NewModStore builds a store with the container's factory. Only the first
// store gets its metrics registered, since a registry rejects duplicates.
func (c *Container) NewModStore(cfg *config.Config, logger *slog.Logger) *store.ModStore {
	var reg prometheus.Registerer
	if !c.registered {
		reg = c.registry
		c.registered = true
	}
	return c.storeFactory.CreateModStore(cfg, logger, reg)
}
