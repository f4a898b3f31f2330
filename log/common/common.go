package common

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type LogLevel uint8

// NoLevel means it should be ignored
const (
	NoLevel LogLevel = iota
	TraceLevel
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
	PanicLevel
	DisabledLevel
	maxLogLevel
)

const LogLevelCount = int(maxLogLevel)

var levelMapping = []zerolog.Level{
	NoLevel:       zerolog.NoLevel,
	TraceLevel:    zerolog.TraceLevel,
	DebugLevel:    zerolog.DebugLevel,
	InfoLevel:     zerolog.InfoLevel,
	WarnLevel:     zerolog.WarnLevel,
	ErrorLevel:    zerolog.ErrorLevel,
	FatalLevel:    zerolog.FatalLevel,
	PanicLevel:    zerolog.PanicLevel,
	DisabledLevel: zerolog.Disabled,
}

var levelNames = map[string]LogLevel{
	"trace":    TraceLevel,
	"debug":    DebugLevel,
	"info":     InfoLevel,
	"warn":     WarnLevel,
	"error":    ErrorLevel,
	"fatal":    FatalLevel,
	"panic":    PanicLevel,
	"disabled": DisabledLevel,
}

func ToZerologLevel(level LogLevel) zerolog.Level {
	if int(level) >= len(levelMapping) {
		return zerolog.NoLevel
	}
	return levelMapping[level]
}

func ParseLogLevel(s string) (LogLevel, error) {
	if level, ok := levelNames[strings.ToLower(s)]; ok {
		return level, nil
	}
	return NoLevel, fmt.Errorf("unknown log level %q", s)
}
