package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	logcomm "github.com/TopiaNetwork/signer/log/common"
	"github.com/TopiaNetwork/signer/log/zerologger"
)

type LogFormat uint8

const (
	TextFormat LogFormat = iota
	JSONFormat
)
const DefaultLogFormat = TextFormat

type LogOutput uint8

const (
	StdErrOutput LogOutput = iota
	FileLogOutput
)
const DefaultLogOutput = StdErrOutput

type Logger interface {
	//log a message at a trace level
	Trace(msg string)
	//log a formatted message at a trace level
	Tracef(string, ...interface{})
	//log a message at an info level
	Info(msg string)
	//log a formatted message at an info level
	Infof(string, ...interface{})
	//log a message at a debug level
	Debug(msg string)
	//log a formatted message at a debug level
	Debugf(string, ...interface{})
	//log a message at a warn level
	Warn(msg string)
	//log a formatted message at a warn level
	Warnf(string, ...interface{})
	//log a message at an error level
	Error(msg string)
	//log a formatted message at an error level
	Errorf(string, ...interface{})
	//log a message at a fatal level
	Fatal(msg string)
	//log a formatted message at a fatal level
	Fatalf(string, ...interface{})
	//log a message at a panic level
	Panic(msg string)
	//log a formatted message at a panic level
	Panicf(string, ...interface{})

	//update the logger level
	UpdateLoggerLevel(level logcomm.LogLevel)
}

const TimestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

func (l LogFormat) String() string {
	switch l {
	case TextFormat:
		return "text"
	case JSONFormat:
		return "json"
	}
	return fmt.Sprintf("LogFormat(%d)", uint8(l))
}

func ParseLogFormat(s string) (LogFormat, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	}
	return DefaultLogFormat, fmt.Errorf("unknown log format %q", s)
}

func (o LogOutput) String() string {
	switch o {
	case StdErrOutput:
		return "stderr"
	case FileLogOutput:
		return "file"
	}
	return fmt.Sprintf("LogOutput(%d)", uint8(o))
}

func ParseLogOutput(s string) (LogOutput, error) {
	switch strings.ToLower(s) {
	case "stderr", "":
		return StdErrOutput, nil
	case "file":
		return FileLogOutput, nil
	}
	return DefaultLogOutput, fmt.Errorf("unknown log output %q", s)
}

func defaultPartsOrder() []string {
	return []string{
		zerolog.TimestampFieldName,
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
		zerolog.CallerFieldName,
	}
}

func newDefaultTextOutput(out io.Writer) io.Writer {
	return &zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: TimestampFormat,
		PartsOrder: defaultPartsOrder(),
	}
}

func selectFormatOutput(format LogFormat, output io.Writer) (io.Writer, error) {
	switch format {
	case TextFormat:
		return newDefaultTextOutput(output), nil
	case JSONFormat:
		return output, nil
	default:
		return nil, errors.New("unknown formatter " + format.String())
	}
}

func generateOutput(output LogOutput, param string) (io.Writer, error) {
	switch output {
	case StdErrOutput:
		return os.Stderr, nil
	case FileLogOutput:
		if param == "" {
			return nil, errors.New("generateOutput err: fileFullPath blank")
		}
		return os.OpenFile(param, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	default:
		return nil, errors.New("unknown output type " + output.String())
	}
}

func CreateMainLogger(level logcomm.LogLevel, format LogFormat, output LogOutput, param string) (Logger, error) {
	outputW, err := generateOutput(output, param)
	if err != nil {
		return nil, err
	}

	return CreateWriterLogger(level, format, outputW)
}

// CreateWriterLogger logs to an arbitrary writer, tests use it to capture output.
func CreateWriterLogger(level logcomm.LogLevel, format LogFormat, w io.Writer) (Logger, error) {
	wr, err := selectFormatOutput(format, w)
	if err != nil {
		return nil, err
	}

	return zerologger.NewLogger(logcomm.ToZerologLevel(level), wr), nil
}

func CreateNopLogger() Logger {
	return zerologger.NewLogger(zerolog.Disabled, io.Discard)
}

func SetGlobalLevel(level logcomm.LogLevel) {
	zerolog.SetGlobalLevel(logcomm.ToZerologLevel(level))
}

func CreateModuleLogger(level logcomm.LogLevel, module string, l Logger) Logger {
	if zl, ok := l.(*zerologger.ZeroLogger); ok {
		return zl.CreateModuleLogger(logcomm.ToZerologLevel(level), module)
	}

	return l
}

// WithField attaches key=val to every entry of l when l supports it.
func WithField(l Logger, key string, val string) Logger {
	if zl, ok := l.(*zerologger.ZeroLogger); ok {
		return zl.With(key, val)
	}

	return l
}
