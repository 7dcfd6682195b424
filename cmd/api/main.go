package main

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhishek622/entrystore/internal/config"
	"github.com/abhishek622/entrystore/internal/handler"
	"github.com/abhishek622/entrystore/internal/logger"
	"github.com/abhishek622/entrystore/web"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

type application struct {
	Logger  *zap.Logger
	Config  *config.Config
	Handler *handler.Handler
	Static  fs.FS
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	log, err := logger.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, %s", cfg)

	entries, closeStore, err := openEntryStore(ctx, cfg, log)
	if err != nil {
		sugar.Fatal(err)
	}
	defer closeStore()

	static := web.Static()
	if cfg.StaticDir != "" {
		static = os.DirFS(cfg.StaticDir)
	}

	app := &application{
		Logger:  log,
		Config:  cfg,
		Handler: handler.New(log, entries),
		Static:  static,
	}

	if err := app.serve(ctx); err != nil {
		sugar.Error(err)
	}
}
