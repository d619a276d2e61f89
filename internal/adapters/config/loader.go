// Package config provides the configuration loader for slnver.
package config

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"time"

	"go.trai.ch/slnver/internal/core/domain"
	"go.trai.ch/slnver/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger         ports.Logger
	FS             ports.FileSystem
	DefaultCommand string
}

// NewLoader creates a new Loader. defaultCommand is the restore executable
// used when the config file does not name one.
func NewLoader(logger ports.Logger, fs ports.FileSystem, defaultCommand string) *Loader {
	return &Loader{Logger: logger, FS: fs, DefaultCommand: defaultCommand}
}

// Load walks up from dir looking for slnver.yaml and returns the resolved
// settings. A missing file yields the defaults.
func (l *Loader) Load(dir string) (*domain.Settings, error) {
	settings := domain.DefaultSettings(l.DefaultCommand)

	configPath, ok := l.findConfiguration(dir)
	if !ok {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return settings, nil
	}

	var configfile Configfile
	if err := l.readAndUnmarshalYAML(configPath, &configfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if err := apply(settings, &configfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	settings.Path = configPath
	l.Logger.Debug("loaded configuration from " + configPath)
	return settings, nil
}

func (l *Loader) findConfiguration(dir string) (string, bool) {
	currentDir, err := filepath.Abs(dir)
	if err != nil {
		currentDir = filepath.Clean(dir)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// readAndUnmarshalYAML reads a YAML file and strictly unmarshals it into target.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Configfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func apply(settings *domain.Settings, configfile *Configfile) error {
	if r := configfile.Restore; r != nil {
		if r.Enabled != nil {
			settings.Restore.Enabled = *r.Enabled
		}
		if r.Command != "" {
			settings.Restore.Command = r.Command
		}
		if r.Args != nil {
			settings.Restore.Args = r.Args
		}
		if r.Timeout != "" {
			timeout, err := time.ParseDuration(r.Timeout)
			if err != nil || timeout <= 0 {
				err := zerr.With(domain.ErrInvalidConfig, "field", "restore.timeout")
				return zerr.With(err, "value", r.Timeout)
			}
			settings.Restore.Timeout = timeout
		}
	}

	if lg := configfile.Log; lg != nil && lg.Format != "" {
		switch lg.Format {
		case domain.LogFormatAuto, domain.LogFormatPretty, domain.LogFormatJSON:
			settings.Log.Format = lg.Format
		default:
			err := zerr.With(domain.ErrInvalidConfig, "field", "log.format")
			return zerr.With(err, "value", lg.Format)
		}
	}

	return nil
}
