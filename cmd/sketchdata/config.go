package main

import (
	"flag"
	"os"
	"strings"

	"github.com/gomlx/sketchdata/pkg/imagedata"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// EnvPrefix of the environment variables read by LoadConfig, e.g.: SKETCHDATA_ROOTS.
const EnvPrefix = "SKETCHDATA"

// Config validation errors.
var (
	ErrNoRoots        = errors.New("no data roots given, use -roots or SKETCHDATA_ROOTS")
	ErrEmptyExtension = errors.New("file extension cannot be empty")
)

// Config of the sketchdata command. Values come from the environment (optionally from a .env file)
// and can be overridden by flags.
type Config struct {
	Roots       []string `envconfig:"ROOTS"`
	Extension   string   `envconfig:"EXTENSION" default:"jpeg"`
	AutoOrient  bool     `envconfig:"AUTO_ORIENT" default:"false"`
	Verify      bool     `envconfig:"VERIFY" default:"false"`
	Parallelism int      `envconfig:"PARALLELISM" default:"0"`
}

// LoadConfig reads envFile, if it exists, into the environment -- without overriding variables
// already set -- and then parses the SKETCHDATA_* variables.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, errors.Wrapf(err, "failed to load %q", envFile)
			}
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to stat %q", envFile)
		}
	}
	cfg := &Config{}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment configuration")
	}
	return cfg, nil
}

// RegisterFlags registers flags that override the configuration values in fs.
// Current values are used as defaults.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Func("roots", "Comma-separated list of directories with images. Positional arguments are appended.",
		func(value string) error {
			cfg.Roots = splitList(value)
			return nil
		})
	fs.StringVar(&cfg.Extension, "ext", cfg.Extension, "Extension of the image files to index, e.g. \"jpeg\" or \"png\".")
	fs.BoolVar(&cfg.AutoOrient, "auto_orient", cfg.AutoOrient, "Apply EXIF orientation when decoding.")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "Decode every indexed image and report failures.")
	fs.IntVar(&cfg.Parallelism, "parallelism", cfg.Parallelism,
		"Number of images decoded in parallel with -verify. If 0 uses the number of cores.")
}

// Validate returns an error if the configuration can't be used.
func (cfg *Config) Validate() error {
	if len(cfg.Roots) == 0 {
		return ErrNoRoots
	}
	if strings.TrimPrefix(cfg.Extension, ".") == "" {
		return ErrEmptyExtension
	}
	return nil
}

// FolderConfig returns the imagedata configuration for the folder dataset.
func (cfg *Config) FolderConfig() *imagedata.FolderConfig {
	folder := imagedata.Folder(cfg.Roots...).WithExtension(cfg.Extension)
	if cfg.AutoOrient {
		folder = folder.WithAutoOrientation()
	}
	return folder
}

func splitList(value string) (parts []string) {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return
}
