package static

import (
	"context"
	"os"
)

// Reader はファイル読み込みの抽象
// テストや低速読み込みの差し替えのためにインターフェースとして定義する
type Reader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileReader はOSのファイルシステムから読み込むReaderの実装
type FileReader struct{}

// NewFileReader は新しいFileReaderを作成する
func NewFileReader() *FileReader {
	return &FileReader{}
}

// ReadFile はファイル全体をメモリへ読み込む
// 失敗はKindNotFoundまたはKindIOに分類して返す。リトライは行わない
func (fr *FileReader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	// クライアント切断後は読み込みを開始しない
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}
	if !info.Mode().IsRegular() {
		// ディレクトリや特殊ファイルは配信対象外
		return nil, &Error{Kind: KindNotFound, Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classify(path, err)
	}
	return data, nil
}
