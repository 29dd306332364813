package static

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Kind はファイル配信の失敗分類
type Kind int

const (
	// KindTraversal はルートディレクトリ外へのパストラバーサル
	KindTraversal Kind = iota
	// KindNotFound は対象が存在しない、または通常ファイルではない
	KindNotFound
	// KindIO は権限エラーなどその他のI/O失敗
	KindIO
)

// String はKindのラベルを返す
func (k Kind) String() string {
	switch k {
	case KindTraversal:
		return "traversal"
	case KindNotFound:
		return "not_found"
	case KindIO:
		return "io_failure"
	default:
		return "unknown"
	}
}

// Error は分類済みの失敗を表すエラー
// Code はKindIOの場合のみ設定されるエラーコードラベル（例: EACCES）
type Error struct {
	Kind Kind
	Path string
	Code string
	Err  error
}

// Error はエラーメッセージを返す
func (e *Error) Error() string {
	switch e.Kind {
	case KindTraversal:
		return fmt.Sprintf("パストラバーサルを拒否: %s", e.Path)
	case KindNotFound:
		return fmt.Sprintf("ファイルが見つかりません: %s", e.Path)
	default:
		return fmt.Sprintf("ファイルの読み込みに失敗 (%s): %s", e.Code, e.Path)
	}
}

// Unwrap はラップされた原因エラーを返す
func (e *Error) Unwrap() error {
	return e.Err
}

// classify はファイルシステムのエラーをError型へ分類する
func classify(path string, err error) *Error {
	if errors.Is(err, fs.ErrNotExist) {
		return &Error{Kind: KindNotFound, Path: path, Err: err}
	}
	return &Error{Kind: KindIO, Path: path, Code: errorCode(err), Err: err}
}

// errorCode は原因エラーからコードラベルを求める
// ファイルシステムの内部情報は露出させず、ラベルのみを返す
func errorCode(err error) string {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.EACCES:
			return "EACCES"
		case syscall.EISDIR:
			return "EISDIR"
		case syscall.EMFILE, syscall.ENFILE:
			return "ENFILE"
		case syscall.ENAMETOOLONG:
			return "ENAMETOOLONG"
		case syscall.ELOOP:
			return "ELOOP"
		}
	}
	if errors.Is(err, fs.ErrPermission) {
		return "EACCES"
	}
	return "EIO"
}
