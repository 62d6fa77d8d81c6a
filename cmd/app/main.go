// Image Transform Studio: load a photo or a webcam snapshot and preview
// simple pixel transforms next to the original.

package main

import (
	"errors"
	"flag"
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/sirupsen/logrus"

	"image-transform-studio/internal/capture"
	"image-transform-studio/internal/config"
	"image-transform-studio/internal/gui"
	imageio "image-transform-studio/internal/io"
)

func main() {
	cfg, err := config.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Initialize logger
	logger := initLogger(cfg.Debug)
	logger.WithFields(logrus.Fields{
		"version":    config.AppVersion,
		"debug_mode": cfg.Debug,
	}).Info("Starting Image Transform Studio")
	logger.Info("Open an image file or capture a camera snapshot to begin")

	myApp := app.NewWithID(config.AppID)
	myApp.SetIcon(theme.MediaPhotoIcon())
	myApp.Settings().SetTheme(theme.DefaultTheme())

	loader := imageio.NewImageLoader(logger)
	camera := capture.NewCamera(cfg.CameraDevice, logger)

	mainApp := gui.NewApplication(myApp, cfg, logger, loader, camera)
	mainApp.ShowAndRun()

	logger.Info("Application shutting down gracefully")
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
