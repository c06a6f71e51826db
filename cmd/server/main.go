package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/youruser/playercard/internal/api"
	"github.com/youruser/playercard/internal/assets"
	"github.com/youruser/playercard/internal/config"
	imagepkg "github.com/youruser/playercard/internal/image"
	"github.com/youruser/playercard/internal/logger"
	"github.com/youruser/playercard/internal/profile"
	"github.com/youruser/playercard/internal/util"
)

func main() {
	cfgPath := flag.String("config", "config.toml", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log, closer, err := logger.New(cfg.Log.Path, logger.ParseLevel(cfg.Log.Level), cfg.Log.MaxSizeMB)
	if err != nil {
		slog.Error("open log", "error", err)
		os.Exit(1)
	}
	defer closer.Close()
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		logger.Fail(log, "server stopped", "error", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	equip := assets.EquipMap{}
	if cfg.Assets.EquipMap != "" {
		m, err := assets.LoadEquipMapFile(cfg.Assets.EquipMap)
		if err != nil {
			return err
		}
		equip = m
	}

	store := assets.NewDirStore(cfg.Assets.Dir)
	// Missing table sprites are a packaging problem; report them but still
	// serve what is there.
	if missing, err := assets.Verify(store.FS(), equip); err != nil {
		log.Warn("asset verification failed", "dir", cfg.Assets.Dir, "error", err)
	} else if len(missing) > 0 {
		log.Warn("asset pack incomplete", "dir", cfg.Assets.Dir, "missing", len(missing), "first", missing[0])
	}
	if cfg.Assets.Watch {
		store.OnInvalidate = func(name string) {
			logger.Trace(log, "asset cache invalidated", "path", name)
		}
		go func() {
			err := store.Watch(ctx, cfg.Assets.Dir, func(err error) {
				log.Warn("asset watcher", "error", err)
			})
			if err != nil {
				log.Warn("asset watch disabled", "error", err)
			}
		}()
	}

	font, err := imagepkg.LoadFont(cfg.Fonts.Path)
	if err != nil {
		return err
	}

	client := profile.NewClient(cfg.Profile.Cookie, cfg.Profile.Timeout(), cfg.Profile.RetryMax)
	client.BaseURL = cfg.Profile.BaseURL
	client.OSBaseURL = cfg.Profile.OSBaseURL

	var avatars imagepkg.AvatarProvider = imagepkg.StaticAvatar{Store: store}
	if cfg.Avatar.URLTemplate != "" {
		avatars = imagepkg.URLAvatar{
			Template: cfg.Avatar.URLTemplate,
			Client:   util.NewHTTPClient(cfg.Profile.Timeout(), cfg.Profile.RetryMax),
			Fallback: avatars,
		}
	}

	engine := imagepkg.NewEngine(store, assets.NewRegistry(equip), font, avatars)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestLogger(log))
	api.RegisterRoutes(r, &api.Server{
		Engine:  engine,
		Source:  client,
		Log:     log,
		ShareQR: cfg.Server.ShareQR,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr(os.Getenv("PORT")),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr, "assets", cfg.Assets.Dir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
