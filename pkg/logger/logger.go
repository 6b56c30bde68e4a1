package logger

import (
	"fmt"
	"io"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

func SetupLogger(level string) {
	loggerLevel, err := log.ParseLevel(level)
	log.SetReportCaller(true)

	log.SetFormatter(&log.JSONFormatter{
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
		},
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if err != nil {
		log.Infof("Level setup default INFO, err: %v", err)
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(loggerLevel)
	}
}

// SetupCLILogger is the console variant for tflogctl: plain text on out,
// no caller info.
func SetupCLILogger(level string, out io.Writer) {
	log.SetOutput(out)
	log.SetReportCaller(false)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
	})

	loggerLevel, err := log.ParseLevel(level)
	if err != nil {
		loggerLevel = log.WarnLevel
	}
	log.SetLevel(loggerLevel)
}
