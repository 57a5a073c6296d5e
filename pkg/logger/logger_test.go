package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.WarnLevel,
		"verbose": zapcore.WarnLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want=%v", in, got, want)
		}
	}
}

// TestNewWritesToFile 檔案輸出且只記錄設定等級以上的訊息
func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.log")
	l, err := New(Config{Level: "warn", Output: path})
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hidden")
	l.Warn("withdrawal rejected", zap.Int64("account", 1))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered: %s", out)
	}
	if !strings.Contains(out, "withdrawal rejected") || !strings.Contains(out, `"timestamp"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}
