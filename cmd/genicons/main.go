// Command genicons renders the Android and PWA launcher icons from one image.
package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"drivelog/internal/app"
	"drivelog/internal/config"
	"drivelog/internal/icons"
)

func main() {
	src := flag.String("src", "frontend/public/icon.jpg", "source image")
	root := flag.String("root", "frontend", "frontend project root")
	flag.Parse()

	logger := app.NewLogger(config.LogConfig{Level: "info"})

	written, err := icons.Generate(*src, icons.DefaultTargets(*root))
	for _, path := range written {
		logger.WithField("path", path).Info("generated icon")
	}
	if err != nil {
		logger.WithError(err).Fatal("icon generation failed")
	}

	logger.WithFields(logrus.Fields{"count": len(written)}).Info("all icons generated")
}
