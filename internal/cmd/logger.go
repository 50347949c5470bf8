package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/tursodatabase/blocks/internal/flags"
)

const logFileName = "blocks.log"

// openLog appends to the log file in dir. The terminal belongs to the game
// while it runs, so nothing is logged to stderr.
func openLog(dir string) (*logrus.Logger, func(), error) {
	path := filepath.Join(dir, logFileName)
	logFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	logger := logrus.New()
	logger.SetOutput(logFile)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)
	if flags.Debug() {
		logger.SetLevel(logrus.TraceLevel)
	}

	return logger, func() { logFile.Close() }, nil
}
