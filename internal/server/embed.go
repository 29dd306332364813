package server

import (
	"embed"
	"log"
)

//go:embed errors
var errorPagesFS embed.FS

// 固定エラーページは起動時に一度だけ読み込まれる
var (
	notFoundPage         = mustErrorPage("errors/404.html")
	methodNotAllowedPage = mustErrorPage("errors/405.html")
)

// mustErrorPage は埋め込みエラーページを読み込む
func mustErrorPage(name string) []byte {
	data, err := errorPagesFS.ReadFile(name)
	if err != nil {
		log.Fatalf("埋め込みエラーページの読み込みに失敗: %v", err)
	}
	return data
}
