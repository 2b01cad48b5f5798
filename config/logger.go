package config

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// LoggerAPI 는 애플리케이션 전역에서 사용하는 최소 로거 인터페이스다.
type LoggerAPI interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fields 는 구조화 로그를 위한 공통 필드 타입이다.
type Fields map[string]any

// Logger 는 전역 로거 인스턴스다. InitLogger 전에는 info 레벨 JSON 로거로 동작한다.
var Logger LoggerAPI = NewLogger("info")

// serviceName 은 WithFields 로그에 service_name 으로 붙는다.
var serviceName = os.Getenv("SERVICE_NAME")

// InitLogger 는 설정의 로그 레벨/포맷으로 전역 로거를 다시 만든다.
func InitLogger(cfg LoggingConfig) {
	level := strings.ToLower(cfg.Level)
	if level == "" {
		level = "info"
	}
	if cfg.ServiceName != "" {
		serviceName = cfg.ServiceName
	}
	Logger = newLogger(level, cfg.Format)
}

// NewLogger 는 주어진 레벨로 gookit/slog 기반 JSON 로거를 생성한다.
func NewLogger(level string) LoggerAPI {
	return newLogger(level, "json")
}

// newLogger: format 이 "text" 이면 로컬 개발용 한 줄 텍스트, 그 외에는 JSON.
func newLogger(level, format string) *slog.Logger {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	if strings.EqualFold(format, "text") {
		h.SetFormatter(slog.NewTextFormatter("[{{datetime}}] [{{level}}] {{message}} {{data}}\n"))
	} else {
		h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
			f.Fields = []string{
				slog.FieldKeyDatetime,
				slog.FieldKeyLevel,
				slog.FieldKeyMessage,
			}
			f.Aliases = slog.StringMap{
				slog.FieldKeyDatetime: "datetime",
				slog.FieldKeyLevel:    "level",
				slog.FieldKeyMessage:  "message",
			}
			f.TimeFormat = "2006-01-02T15:04:05"
		}))
	}

	return slog.NewWithHandlers(h)
}

// InfoWithFields 는 request_id 등 구조화 필드를 top-level 키로 포함해 출력한다.
func InfoWithFields(msg string, fields Fields) { logWithFields(slog.InfoLevel, msg, fields) }

func WarnWithFields(msg string, fields Fields) { logWithFields(slog.WarnLevel, msg, fields) }

func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }

func logWithFields(level slog.Level, msg string, fields Fields) {
	merged := make(slog.M, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	if _, ok := merged["service_name"]; !ok && serviceName != "" {
		merged["service_name"] = serviceName
	}

	lg, ok := Logger.(*slog.Logger)
	if !ok {
		// 테스트 등에서 교체된 로거는 필드 없이 메시지만 받는다.
		switch level {
		case slog.ErrorLevel:
			Logger.Error(msg)
		case slog.WarnLevel:
			Logger.Warn(msg)
		default:
			Logger.Info(msg)
		}
		return
	}
	lg.WithFields(merged).Log(level, msg)
}
