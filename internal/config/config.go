package config

import (
	"flag"
	"io"
)

const (
	AppName    = "Image Transform Studio"
	AppID      = "com.imagetransform.studio"
	AppVersion = "1.0.0"
)

// Config holds the runtime settings of the application. Nothing is
// persisted between runs.
type Config struct {
	Debug        bool
	Title        string
	WindowWidth  float32
	WindowHeight float32

	// CameraDevice is the capture device index. Only device 0 is used.
	CameraDevice int
}

// Default returns a configuration with default values
func Default() Config {
	return Config{
		Debug:        false,
		Title:        AppName,
		WindowWidth:  1200,
		WindowHeight: 760,
		CameraDevice: 0,
	}
}

// ParseFlags applies command line flags on top of the defaults.
func ParseFlags(args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug mode with verbose logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
