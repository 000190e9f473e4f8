// hot-reload.go: dynamic configuration with Argus integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

import (
	"sync"
	"time"

	"github.com/agilira/argus"
)

// HotConfig watches a configuration file and keeps the latest parsed cache
// configuration available. It does NOT touch any cache: the cache is
// single-threaded by contract, so the watcher goroutine only stores the
// pending configuration, and the cache owner decides on its own goroutine
// when to pick it up (typically by rebuilding the cache, since capacity
// cannot change on a live instance).
type HotConfig struct {
	watcher *argus.Watcher
	mu      sync.RWMutex
	config  Config
	pending bool

	// OnReload is called from the watcher goroutine after configuration is
	// successfully reloaded. It must be fast, non-blocking, and must not
	// call into a cache owned by another goroutine.
	OnReload func(oldConfig, newConfig Config)
}

// HotConfigOptions configures hot reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the configuration file to watch.
	// Supports JSON, YAML, TOML, HCL, INI, Properties formats.
	ConfigPath string

	// PollInterval is how often to check for configuration changes.
	// Default: 1 second. Minimum: 100ms.
	PollInterval time.Duration

	// OnReload is called after configuration is successfully reloaded.
	OnReload func(oldConfig, newConfig Config)

	// Logger for hot reload operations. If nil, NoOpLogger is used.
	Logger Logger
}

// NewHotConfig creates a hot-reloadable configuration source.
// It starts watching the configuration file immediately.
//
// Example configuration file (YAML):
//
//	cache:
//	  max_capacity: 10000
//	  unbounded: false
//	  initial_capacity: 1024
//
// Supported configuration keys:
//   - cache.max_capacity (int): Maximum number of cache entries
//   - cache.unbounded (bool): Disable capacity bounding
//   - cache.initial_capacity (int): Hash table pre-sizing
//
// Capacity changes require cache reconstruction; HotConfig surfaces the new
// configuration through Config and the OnReload callback, and the owner
// rebuilds when it sees fit.
func NewHotConfig(opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, NewErrConfigPathRequired()
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = 1 * time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}

	logger := opts.Logger
	if logger == nil {
		logger = NoOpLogger{}
	}

	hc := &HotConfig{
		OnReload: opts.OnReload,
		config:   DefaultConfig(0),
	}
	hc.config.Logger = logger

	argusConfig := argus.Config{
		PollInterval: opts.PollInterval,
	}

	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file for changes.
func (hc *HotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// Config returns the most recently parsed configuration (thread-safe).
func (hc *HotConfig) Config() Config {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.config
}

// TakePending returns the latest configuration and whether a reload arrived
// since the previous call. The cache owner polls this from its own
// goroutine and rebuilds the cache when it reports true.
func (hc *HotConfig) TakePending() (Config, bool) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	pending := hc.pending
	hc.pending = false
	return hc.config, pending
}

// handleConfigChange is called by Argus when configuration changes.
func (hc *HotConfig) handleConfigChange(configData map[string]interface{}) {
	hc.mu.Lock()
	oldConfig := hc.config
	newConfig := hc.parseConfig(configData)
	hc.config = newConfig
	hc.pending = true
	hc.mu.Unlock()

	if newConfig.Logger != nil {
		newConfig.Logger.Debug("configuration reloaded",
			"max_capacity", newConfig.MaxCapacity,
			"unbounded", newConfig.Unbounded,
			"initial_capacity", newConfig.InitialCapacity)
	}

	if hc.OnReload != nil {
		hc.OnReload(oldConfig, newConfig)
	}
}

// parseNonNegativeInt extracts a non-negative integer from interface{} value.
// Supports both int and float64 types (YAML/JSON may vary).
func parseNonNegativeInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v >= 0 {
			return v, true
		}
	case float64:
		if v >= 0 {
			return int(v), true
		}
	}
	return 0, false
}

// parseBool extracts a bool from interface{} value.
func parseBool(value interface{}) (bool, bool) {
	if v, ok := value.(bool); ok {
		return v, true
	}
	return false, false
}

// parseConfig extracts cache configuration from Argus config data.
func (hc *HotConfig) parseConfig(data map[string]interface{}) Config {
	config := hc.config

	// Extract cache section - Argus might nest it or provide it directly
	cacheSection, ok := data["cache"].(map[string]interface{})
	if !ok {
		// Try if the whole data IS the cache section
		if _, hasMaxCapacity := data["max_capacity"]; hasMaxCapacity {
			cacheSection = data
		} else {
			return config
		}
	}

	if maxCapacity, ok := parseNonNegativeInt(cacheSection["max_capacity"]); ok {
		config.MaxCapacity = uint64(maxCapacity)
	}

	if unbounded, ok := parseBool(cacheSection["unbounded"]); ok {
		config.Unbounded = unbounded
	}

	if initialCapacity, ok := parseNonNegativeInt(cacheSection["initial_capacity"]); ok {
		config.InitialCapacity = initialCapacity
	}

	return config
}
