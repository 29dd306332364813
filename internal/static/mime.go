package static

import (
	"path/filepath"
	"strings"
)

// DefaultType は未知の拡張子に対するContent-Type
const DefaultType = "application/octet-stream"

// Table は小文字の拡張子（先頭ドット付き）からContent-Typeへのマッピング
// 起動後は変更されない前提で、ロックなしで共有される
type Table map[string]string

// DefaultTable は標準のMIMEテーブル
var DefaultTable = Table{
	".html": "text/html",
	".css":  "text/css",
	".js":   "text/javascript",
	".png":  "image/png",
}

// TypeByPath はファイルパスからContent-Typeを求める
// 拡張子は大文字小文字を区別せず、テーブルにない場合はDefaultTypeを返す
func (t Table) TypeByPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if typ, ok := t[ext]; ok {
		return typ
	}
	return DefaultType
}

// Merge は追加エントリを重ねた新しいテーブルを返す
// レシーバは変更しない。キーはドット付き小文字に正規化される
func (t Table) Merge(extra map[string]string) Table {
	merged := make(Table, len(t)+len(extra))
	for ext, typ := range t {
		merged[ext] = typ
	}
	for ext, typ := range extra {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		merged[ext] = typ
	}
	return merged
}
