package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config 定義 Logger 的等級與輸出位置
type Config struct {
	Level  string `yaml:"level"`  // Log 等級: "debug", "info", "warn", "error"
	Output string `yaml:"output"` // 輸出位置: "stderr", "stdout" 或檔案路徑
}

// New 建立 zap Logger (JSON 格式，ISO8601 時間)
//
// 參數:
//
//	cfg: Config - Logger 配置
//
// 回傳值:
//
//	*zap.Logger: Logger 實例
//	error: 建立失敗
func New(cfg Config) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	// 互動式程式不需要取樣與 stacktrace
	zapConfig.Sampling = nil
	zapConfig.DisableStacktrace = true

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}
	zapConfig.OutputPaths = []string{output}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	l, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return l, nil
}

// ParseLevel 將設定字串轉成 zap 等級，無法辨識時預設為 warn
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
