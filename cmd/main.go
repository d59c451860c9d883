package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"Judgment/config"
	"Judgment/internal/api"
	"Judgment/internal/game/manager"
	"Judgment/internal/scoreboard"
	"Judgment/internal/storage"
	"Judgment/internal/utils"
	"Judgment/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// newStore 按配置选择计分板存储
func newStore(ctx context.Context, cfg config.Config) (scoreboard.Store, error) {
	switch cfg.Scoreboard.Backend {
	case "", "file":
		fs, err := scoreboard.NewFileStore(cfg.Scoreboard.Path)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case "memory":
		return scoreboard.NewMemoryStore(), nil
	case "redis":
		rdb, err := storage.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("redis init: %w", err)
		}
		return scoreboard.NewRedisStore(rdb, cfg.Redis.Key), nil
	case "postgres":
		db, err := storage.NewPostgres(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("postgres init: %w", err)
		}
		ps, err := scoreboard.NewPostgresStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return ps, nil
	default:
		return nil, fmt.Errorf("unknown scoreboard backend %q", cfg.Scoreboard.Backend)
	}
}

func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		utils.Log.Fatal("config load failed", "err", err)
	}
	utils.Init(cfg.Log.Level)

	//-------------------------------------------------------
	// 1. 计分板存储
	//-------------------------------------------------------
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := newStore(ctx, cfg)
	cancel()
	if err != nil {
		utils.Log.Fatal("scoreboard init failed", "backend", cfg.Scoreboard.Backend, "err", err)
	}
	utils.Log.Info("scoreboard ready", "backend", cfg.Scoreboard.Backend)

	//-------------------------------------------------------
	// 2. 初始化 Gin + CORS
	//-------------------------------------------------------
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type"},
	}))

	//-------------------------------------------------------
	// 3. Hub（必须先于 GameManager 启动）
	//-------------------------------------------------------
	hub := websocket.NewHub()
	go hub.Run()
	defer hub.Close()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "connections": hub.Connections()})
	})

	//-------------------------------------------------------
	// 4. GameManager + API
	//-------------------------------------------------------
	mgr := manager.NewGameManager(store, manager.WithNotifier(hub))
	api.NewHandler(mgr).Register(r)
	r.GET("/ws", websocket.ServeWS(hub))

	//-------------------------------------------------------
	// 5. 前端静态文件
	//-------------------------------------------------------
	if dir := cfg.Static.Dir; dir != "" {
		if _, err := os.Stat(dir); err == nil {
			r.Static("/static", dir)
			index := filepath.Join(dir, "index.html")
			r.GET("/", func(c *gin.Context) {
				c.Header("Cache-Control", "no-store")
				c.File(index)
			})
		} else {
			utils.Log.Warn("static dir not found", "dir", dir)
		}
	}

	//-------------------------------------------------------
	// 6. 启动服务器
	//-------------------------------------------------------
	utils.Log.Info("server running", "addr", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		utils.Log.Fatal("server stopped", "err", err)
	}
}
