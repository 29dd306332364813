package static

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// Resolver はリクエストパスをルートディレクトリ配下のファイルパスへ解決する
type Resolver struct {
	root  string // 絶対パス
	index string // デフォルトドキュメント名
}

// NewResolver は新しいResolverを作成する
// rootは絶対パスへ解決され、以降すべての解決結果はその配下に限定される
func NewResolver(root, index string) (*Resolver, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("ルートディレクトリの解決に失敗: %w", err)
	}
	if index == "" {
		index = "index.html"
	}
	return &Resolver{root: absRoot, index: index}, nil
}

// Root はルートディレクトリの絶対パスを返す
func (r *Resolver) Root() string {
	return r.root
}

// Index はデフォルトドキュメント名を返す
func (r *Resolver) Index() string {
	return r.index
}

// Resolve はURLパスをファイルシステムパスへ解決する
// ルートパス（"/")はデフォルトドキュメントへ置換される。
// `..` セグメントを含むパスは、正規化で結果がルート配下に戻る場合でも
// KindTraversalとして拒否する
func (r *Resolver) Resolve(urlPath string) (string, error) {
	if urlPath == "" || urlPath == "/" {
		return filepath.Join(r.root, r.index), nil
	}

	for _, seg := range strings.Split(urlPath, "/") {
		if seg == ".." {
			return "", &Error{Kind: KindTraversal, Path: urlPath}
		}
	}

	cleaned := path.Clean("/" + urlPath)
	resolved := filepath.Join(r.root, filepath.FromSlash(cleaned))

	// 結合後もルート配下に収まっていることを検証する
	if resolved != r.root && !strings.HasPrefix(resolved, r.root+string(filepath.Separator)) {
		return "", &Error{Kind: KindTraversal, Path: urlPath}
	}

	return resolved, nil
}
