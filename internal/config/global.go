// SPDX-License-Identifier: MPL-2.0

package config

import "sync"

var (
	mu sync.Mutex

	// configDirOverride redirects ConfigDir, for tests.
	configDirOverride string

	// configFilePathOverride is set from the --config flag.
	configFilePathOverride string

	cached     *Config
	cachedPath string
	hasCached  bool
)

// SetConfigFilePathOverride makes Load use an explicit config file instead
// of the platform default location. Clears the cache.
func SetConfigFilePathOverride(path string) {
	mu.Lock()
	defer mu.Unlock()
	configFilePathOverride = path
	hasCached = false
}

// SetConfigDirOverride redirects the config directory, for tests. Clears the
// cache. Pass "" to restore platform resolution.
func SetConfigDirOverride(dir string) {
	mu.Lock()
	defer mu.Unlock()
	configDirOverride = dir
	hasCached = false
}

// Load returns the effective configuration, loading it on first use and
// caching it for the rest of the process.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()
	if hasCached {
		return cached, nil
	}
	cfg, path, err := load(configFilePathOverride)
	if err != nil {
		return nil, err
	}
	cached, cachedPath, hasCached = cfg, path, true
	return cfg, nil
}

// LoadedFrom returns the path of the config file the cached configuration
// came from ("" when running on defaults or before the first Load).
func LoadedFrom() string {
	mu.Lock()
	defer mu.Unlock()
	return cachedPath
}

// Reset clears the cached configuration, for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cached, cachedPath, hasCached = nil, "", false
}
