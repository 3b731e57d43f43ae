/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_registry.go builds the process-wide interaction registry from the
// loaded configuration.
//
// The registry is created once per process. Its cache is filled by the first
// query, so construction itself never touches the filesystem.

package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jpl-au/interactions/interaction"
	"github.com/jpl-au/interactions/interaction/builtin"
	"github.com/jpl-au/interactions/internal/config"
	"github.com/jpl-au/interactions/internal/log"
)

// builtinProject is the audit log project for the embedded extensions root.
const builtinProject = "builtin"

var (
	registry *interaction.Registry
	regCfg   *config.Config
	regFS    fs.FS
	regRoot  string
	initOnce sync.Once
	initErr  error
)

// initRegistry loads the configuration and creates the registry over the
// extensions root: the --root override (relative to the working directory),
// then extensions.root from config (relative to the config's base
// directory), then the embedded built-in assets.
func initRegistry() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		regCfg = cfg

		regRoot = Root()
		if regRoot == "" {
			regRoot = cfg.ExtensionsRoot()
		}
		if regRoot == "" {
			regFS = builtin.FS
			log.SetProject(builtinProject)
		} else {
			if abs, err := filepath.Abs(regRoot); err == nil {
				regRoot = abs
			}
			if info, err := os.Stat(regRoot); err != nil || !info.IsDir() {
				initErr = fmt.Errorf("extensions root %s: not a directory", regRoot)
				return
			}
			regFS = os.DirFS(regRoot)
			log.SetProject(regRoot)
		}

		registry = interaction.NewRegistry(regFS, cfg.Dirs(), interaction.WithObserver(auditRegistry))
	})
	return initErr
}

// auditRegistry records registry events in the audit log.
func auditRegistry(e interaction.Event) {
	switch e.Type {
	case interaction.EventRefresh:
		l := log.Event(string(e.Type), "refresh").Detail("dirs", e.Dirs)
		if e.Err == nil {
			l.Detail("count", e.Count).Detail("skipped", e.Skipped)
		}
		l.Write(e.Err)
	case interaction.EventMiss:
		log.Event(string(e.Type), "lookup").Target(e.Target).Write(e.Err)
	}
}

// Registry returns the process-wide registry. Only valid once the root
// command's pre-run has initialised it.
func Registry() *interaction.Registry { return registry }
