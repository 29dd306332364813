package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"haishin/internal/config"
	"haishin/internal/static"

	"github.com/gin-gonic/gin"
)

// StaticHandler は静的ファイル配信のハンドラ群を実装する
type StaticHandler struct {
	config   *config.Config
	resolver *static.Resolver
	mimes    static.Table
	reader   static.Reader
}

// HealthResponse はヘルスチェックのレスポンス
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ServerInfo はステータスレスポンス内のサーバー情報
type ServerInfo struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// StatusResponse はシステム状態のレスポンス
type StatusResponse struct {
	Status    string     `json:"status"`
	Server    ServerInfo `json:"server"`
	Root      string     `json:"root"`
	Index     string     `json:"index"`
	MimeTypes int        `json:"mime_types"`
	Timestamp time.Time  `json:"timestamp"`
}

// HealthCheck はヘルスチェックエンドポイントの実装
func (h *StaticHandler) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	}

	c.JSON(http.StatusOK, response)
}

// GetStatus はシステム状態取得エンドポイントの実装
func (h *StaticHandler) GetStatus(c *gin.Context) {
	response := StatusResponse{
		Status: "running",
		Server: ServerInfo{
			Host: h.config.Server.Host,
			Port: h.config.Server.Port,
		},
		Root:      h.resolver.Root(),
		Index:     h.resolver.Index(),
		MimeTypes: len(h.mimes),
		Timestamp: time.Now(),
	}

	c.JSON(http.StatusOK, response)
}

// ServeFile は静的ファイル配信エンドポイントの実装
// 1リクエストにつき、200 / 403 / 404 / 405 / 500 のいずれか
// ちょうど1つのレスポンスを返す
func (h *StaticHandler) ServeFile(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead:
	default:
		h.MethodNotAllowed(c)
		return
	}

	resolved, err := h.resolver.Resolve(c.Request.URL.Path)
	if err != nil {
		h.rejectTraversal(c)
		return
	}

	data, err := h.reader.ReadFile(c.Request.Context(), resolved)
	if err != nil {
		h.readFailure(c, err)
		return
	}

	contentType := h.mimes.TypeByPath(resolved)

	// HEADはヘッダのみを返す
	if c.Request.Method == http.MethodHead {
		c.Header("Content-Type", contentType)
		c.Header("Content-Length", strconv.Itoa(len(data)))
		c.Status(http.StatusOK)
		return
	}

	// ファイルのバイト列をそのまま返す（再エンコードしない）
	c.Data(http.StatusOK, contentType, data)
}

// MethodNotAllowed はGET/HEAD以外のメソッドを拒否するハンドラ
func (h *StaticHandler) MethodNotAllowed(c *gin.Context) {
	c.Header("Allow", "GET, HEAD")
	c.Data(http.StatusMethodNotAllowed, "text/html", methodNotAllowedPage)
}

// rejectTraversal はパストラバーサルの拒否レスポンスを返す
func (h *StaticHandler) rejectTraversal(c *gin.Context) {
	c.Data(http.StatusForbidden, "text/plain; charset=utf-8",
		[]byte("403: リクエストパスが不正です\n"))
}

// readFailure は読み込み失敗を分類してレスポンスへ変換する
func (h *StaticHandler) readFailure(c *gin.Context, err error) {
	// クライアント切断による中断はレスポンスを届けられないため、
	// 接続を破棄して終了する
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	var serr *static.Error
	if errors.As(err, &serr) {
		switch serr.Kind {
		case static.KindNotFound:
			c.Data(http.StatusNotFound, "text/html", notFoundPage)
			return
		case static.KindIO:
			c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8",
				[]byte(fmt.Sprintf("500: ファイルの読み込みに失敗しました (%s)\n", serr.Code)))
			return
		}
	}

	c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8",
		[]byte("500: ファイルの読み込みに失敗しました (EIO)\n"))
}
