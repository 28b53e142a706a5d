// Package config loads the engine's YAML configuration (cache sizing,
// search defaults, logging sinks, synonym packs) and validates it against
// an embedded JSON Schema, adapted from the teacher's config/xdg.go search
// path conventions and config/layered.go merge/validate pipeline.
package config

import (
	"os"
	"path/filepath"
)

// XDGBaseDirs mirrors the teacher's XDG Base Directory resolution.
type XDGBaseDirs struct {
	ConfigHome string
	DataHome   string
	CacheHome  string
}

// GetXDGBaseDirs returns the XDG Base Directory paths for the current user.
func GetXDGBaseDirs() XDGBaseDirs {
	return XDGBaseDirs{
		ConfigHome: xdgDir("XDG_CONFIG_HOME", ".config"),
		DataHome:   xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share")),
		CacheHome:  xdgDir("XDG_CACHE_HOME", ".cache"),
	}
}

func xdgDir(envVar, homeSuffix string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, homeSuffix)
	}
	return ""
}

// SearchPaths returns the ordered candidate config file locations for
// "meilirank", preferring the XDG config directory over dotfiles over the
// working directory (spec ambient "Configuration").
func SearchPaths() []string {
	xdg := GetXDGBaseDirs()
	home := os.Getenv("HOME")

	var paths []string
	paths = append(paths, filepath.Join(xdg.ConfigHome, "meilirank", "config.yaml"))
	if home != "" {
		paths = append(paths, filepath.Join(home, ".meilirank.yaml"))
	}
	paths = append(paths, "./meilirank.yaml")
	return paths
}

// FindConfigFile returns the first existing path from SearchPaths, or ""
// if none exist.
func FindConfigFile() string {
	for _, p := range SearchPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
