package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig `toml:"server"`
	Static StaticConfig `toml:"static"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `toml:"host"` // リッスンするホスト
	Port int    `toml:"port"` // リッスンするポート番号

	// タイムアウトは設定ファイルからは変更しない
	ReadTimeout  time.Duration `toml:"-"` // 読み込みタイムアウト
	WriteTimeout time.Duration `toml:"-"` // 書き込みタイムアウト
}

// StaticConfig は静的ファイル配信の設定
type StaticConfig struct {
	Root  string `toml:"root"`  // 配信ルートディレクトリ
	Index string `toml:"index"` // デフォルトドキュメント名

	// MIMEテーブルへの追加エントリ（拡張子 -> Content-Type）
	MIMETypes map[string]string `toml:"mime_types"`
}

// Default はデフォルト設定を返す
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         3000,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Static: StaticConfig{
			Root:  "public",
			Index: "index.html",
		},
	}
}

// Load は設定を読み込む（デフォルト値 + 環境変数）
func Load() (*Config, error) {
	cfg := Default()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}
	return cfg, nil
}

// LoadFile はTOMLファイルから設定を読み込む
// ファイルの値はデフォルト値を上書きし、環境変数はさらにそれを上書きする
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
	}
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}
	return cfg, nil
}

// applyEnv は環境変数による上書きを適用する
func applyEnv(cfg *Config) {
	cfg.Server.Host = getEnvOrDefault("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvAsIntOrDefault("SERVER_PORT", cfg.Server.Port)
	cfg.Static.Root = getEnvOrDefault("STATIC_ROOT", cfg.Static.Root)
	cfg.Static.Index = getEnvOrDefault("STATIC_INDEX", cfg.Static.Index)
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}
	if c.Static.Root == "" {
		return fmt.Errorf("ルートディレクトリが設定されていません")
	}
	if c.Static.Index == "" {
		return fmt.Errorf("デフォルトドキュメント名が設定されていません")
	}
	if strings.ContainsAny(c.Static.Index, "/\\") {
		return fmt.Errorf("無効なデフォルトドキュメント名: %s", c.Static.Index)
	}
	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intVal int
		if _, err := fmt.Sscanf(value, "%d", &intVal); err == nil {
			return intVal
		}
	}
	return defaultValue
}
