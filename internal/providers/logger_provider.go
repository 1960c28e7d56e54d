package providers

import (
	"funneld/internal/structures"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

var logFileNames = map[TypeEnum]string{
	TypeApp:  "app.log",
	TypeGet:  "get.log",
	TypePost: "post.log",
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

// GetLogTypeByRequestType maps an HTTP method to a log stream. Everything
// that is not a POST lands in the GET stream.
func GetLogTypeByRequestType(method string) TypeEnum {
	if method == http.MethodPost {
		return TypePost
	}
	return TypeGet
}

type LogProvider struct {
	loggers map[TypeEnum]*zerolog.Logger
	files   []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	provider := &LogProvider{
		loggers: make(map[TypeEnum]*zerolog.Logger, len(logFileNames)),
	}

	if err := os.MkdirAll(conf.Logger.Dir, 0755); err != nil {
		return nil, err
	}

	for logType, name := range logFileNames {
		file, err := os.OpenFile(
			filepath.Join(conf.Logger.Dir, name),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY,
			os.FileMode(conf.Logger.Mode),
		)
		if err != nil {
			provider.Close()
			return nil, err
		}
		provider.files = append(provider.files, file)

		var writer zerolog.LevelWriter
		if conf.Debug {
			writer = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{Out: os.Stdout})
		} else {
			writer = zerolog.MultiLevelWriter(file)
		}
		logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
		provider.loggers[logType] = &logger
	}

	return provider, nil
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.loggers[t].Error().Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.loggers[t].Warn().Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.loggers[t].Debug().Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.loggers[t].Info().Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.loggers[t].Fatal().Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, file := range l.files {
		_ = file.Close()
	}
}
