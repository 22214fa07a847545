// Package config resolves tool-level settings from defaults, the optional
// workspace settings file, and LINTKIT_* environment variables. CLI flags
// override all of these at the command layer.
package config

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/lintkit/internal/filesystem"
	"github.com/spf13/viper"
)

// FileName is the optional settings file at the workspace root.
const FileName = ".lintkitrc.yaml"

// Settings holds resolved tool settings.
type Settings struct {
	PackageManager string `mapstructure:"packageManager"`
	SkipInstall    bool   `mapstructure:"skipInstall"`
}

var validPackageManagers = map[string]bool{
	"npm":  true,
	"yarn": true,
	"pnpm": true,
}

// ValidPackageManager reports whether name is a supported install command.
func ValidPackageManager(name string) bool {
	return validPackageManagers[name]
}

// Load resolves settings for the workspace rooted at root. The settings
// file is read through the filesystem abstraction so tests can supply it
// via the mock.
func Load(fs filesystem.FileSystem, root string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("packageManager", "npm")
	v.SetDefault("skipInstall", false)

	_ = v.BindEnv("packageManager", "LINTKIT_PACKAGE_MANAGER")
	_ = v.BindEnv("skipInstall", "LINTKIT_SKIP_INSTALL")

	path := filepath.Join(root, FileName)
	if fs.Exists(path) {
		data, err := fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if !validPackageManagers[settings.PackageManager] {
		return nil, fmt.Errorf("unsupported package manager %q (expected npm, yarn, or pnpm)", settings.PackageManager)
	}

	return &settings, nil
}
