package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/cli"
	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
	"github.com/JoeShih716/go-mem-bank/internal/config"
	"github.com/JoeShih716/go-mem-bank/pkg/journal"
	"github.com/JoeShih716/go-mem-bank/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. 載入設定 (沒有設定檔時使用預設值)
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		return err
	}

	// 2. 初始化 Logger
	appLogger, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Sync() }()

	// 3. 初始化 Directory
	policy := cfg.Bank.Policy()
	opts := []memory_adapter.Option{
		memory_adapter.WithBranch(cfg.Bank.Branch),
		memory_adapter.WithPolicy(policy),
	}
	if cfg.Journal.Path != "" {
		j, err := journal.Open(cfg.Journal.Path)
		if err != nil {
			return err
		}
		// 程式結束時關閉日誌
		defer j.Close()
		opts = append(opts, memory_adapter.WithJournal(j))
		appLogger.Info("transaction journal enabled", zap.String("path", cfg.Journal.Path))
	}
	directory := memory_adapter.NewDirectory(opts...)

	// 4. 初始化 UseCase
	coreUseCase := usecase.NewCoreUseCase(directory, appLogger.With(zap.String("component", "CoreUseCase")))

	// 5. 啟動互動式選單 (Driving Adapter)
	shell := cli.NewShell(coreUseCase, os.Stdin, os.Stdout,
		appLogger.With(zap.String("component", "Shell")),
		cli.WithCurrencySymbol(cfg.Bank.CurrencySymbol),
	)
	appLogger.Info("bank started",
		zap.String("branch", cfg.Bank.Branch),
		zap.Stringer("withdrawal_limit", policy.Limit),
		zap.Int("max_withdrawals", policy.MaxWithdrawals),
	)
	if err := shell.Run(context.Background()); err != nil {
		appLogger.Error("shell stopped", zap.Error(err))
		return err
	}
	appLogger.Info("bank exited")
	return nil
}
