package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"haishin/internal/config"
	"haishin/internal/static"

	"github.com/gin-gonic/gin"
)

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	httpServer *http.Server
	engine     *gin.Engine
}

// New は新しいServerインスタンスを作成する
// ルートディレクトリの解決に失敗した場合はエラーを返す
func New(cfg *config.Config) (*Server, error) {
	resolver, err := static.NewResolver(cfg.Static.Root, cfg.Static.Index)
	if err != nil {
		return nil, fmt.Errorf("パスリゾルバの作成に失敗: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := newEngine(cfg, resolver, static.NewFileReader())

	return &Server{
		config: cfg,
		engine: engine,
		httpServer: &http.Server{
			Addr:         cfg.ServerAddress(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}, nil
}

// newEngine はルーティングを設定したginエンジンを作成する
func newEngine(cfg *config.Config, resolver *static.Resolver, reader static.Reader) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	engine.HandleMethodNotAllowed = true

	h := &StaticHandler{
		config:   cfg,
		resolver: resolver,
		mimes:    static.DefaultTable.Merge(cfg.Static.MIMETypes),
		reader:   reader,
	}

	// ヘルスチェックエンドポイント
	engine.GET("/health", h.HealthCheck)

	// APIエンドポイント
	engine.GET("/api/status", h.GetStatus)

	// 固定ルート以外はすべて静的ファイル配信へ
	engine.NoRoute(h.ServeFile)
	engine.NoMethod(h.MethodNotAllowed)

	return engine
}

// Start はサーバーを起動する
func (s *Server) Start(ctx context.Context) error {
	// シャットダウン用のチャンネル
	shutdownCh := make(chan error, 1)

	// サーバーを別ゴルーチンで起動
	go func() {
		log.Printf("HTTPサーバーを起動しています: %s (ルート: %s)",
			s.config.ServerAddress(), s.config.Static.Root)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			shutdownCh <- fmt.Errorf("サーバーの起動に失敗: %w", err)
		}
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// コンテキストかシグナルを待つ
	select {
	case <-ctx.Done():
		log.Println("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Printf("シグナルを受信しました: %v", sig)
	case err := <-shutdownCh:
		return err
	}

	// グレースフルシャットダウン
	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	log.Println("サーバーをシャットダウンしています...")

	// 5秒のタイムアウトを設定
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	log.Println("サーバーが正常にシャットダウンされました")
	return nil
}
