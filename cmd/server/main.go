package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // 确保在精简镜像中也能识别时区

	"github.com/joho/godotenv"
	"github.com/user/movie-explorer/internal/config"
	"github.com/user/movie-explorer/internal/handler"
	"github.com/user/movie-explorer/internal/repository"
	"github.com/user/movie-explorer/internal/router"
	"github.com/user/movie-explorer/internal/service"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	// 初始化 OMDb 客户端，缺少 API Key 在启动时直接失败
	omdb, err := service.NewOMDbClient(cfg.OMDbAPIKey, cfg.OMDbBaseURL)
	if err != nil {
		log.Fatalf("初始化 OMDb 客户端失败: %v", err)
	}

	// 初始化存储
	slots, closeStorage := openStorage(cfg)
	defer closeStorage()
	repos := repository.NewRepositories(slots, cfg.FavoritesKey)

	// 收藏夹在进程内只有一个实例
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	favorites := service.NewFavoritesStore(ctx, repos.Favorite)
	cancel()
	log.Printf("收藏夹已加载: %d 部电影 (存储槽 %s)", favorites.Count(), repos.Favorite.Key())

	sessions := service.NewSessionRegistry(omdb, cfg.FlowCacheSize, cfg.FlowTTL)

	// 启动定时清理任务
	cleanupSvc := service.NewCleanupService(sessions, 10*time.Minute)
	cleanupSvc.Start()
	defer cleanupSvc.Stop()

	h := handler.NewHandler(cfg, favorites, sessions)
	r := router.New(h)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   40 * time.Second, // 需覆盖 OMDb 请求的 30 秒超时
		MaxHeaderBytes: 1 << 20,
	}

	// 在 goroutine 中启动服务器，这样我们就可以监听信号
	go func() {
		log.Printf("服务器启动于 http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")

	// 5 秒超时上下文用于关闭过程
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("服务器强制关闭:", err)
	}

	log.Println("服务器已退出")
}

// openStorage 按配置选择存储槽实现
func openStorage(cfg *config.Config) (repository.SlotStore, func()) {
	if cfg.StorageDriver == "memory" {
		log.Println("使用内存存储，收藏夹不会在重启后保留")
		return repository.NewMemorySlotStore(), func() {}
	}

	db, err := repository.InitDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	store := repository.NewPostgresSlotStore(db)
	if err := store.Migrate(); err != nil {
		log.Fatalf("%v", err)
	}

	return store, func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}
