package static

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestFileReaderReadFile は通常ファイルの読み込みをテストする
func TestFileReaderReadFile(t *testing.T) {
	dir := t.TempDir()
	want := []byte("<p>hi</p>")
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("テストファイルの作成に失敗しました: %v", err)
	}

	reader := NewFileReader()
	got, err := reader.ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("読み込みでエラーが発生しました: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("読み込み結果が一致しません: got %q, want %q", got, want)
	}
}

// TestFileReaderNotFound は存在しないファイルの分類をテストする
func TestFileReaderNotFound(t *testing.T) {
	reader := NewFileReader()
	_, err := reader.ReadFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("エラーが期待されましたが、エラーが発生しませんでした")
	}

	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("Error型ではないエラーが返されました: %v", err)
	}
	if serr.Kind != KindNotFound {
		t.Errorf("失敗分類が一致しません: got %s, want %s", serr.Kind, KindNotFound)
	}
}

// TestFileReaderDirectory はディレクトリがNotFoundへ分類されることをテストする
func TestFileReaderDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "assets")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("テストディレクトリの作成に失敗しました: %v", err)
	}

	reader := NewFileReader()
	_, err := reader.ReadFile(context.Background(), sub)
	if err == nil {
		t.Fatal("エラーが期待されましたが、エラーが発生しませんでした")
	}

	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("Error型ではないエラーが返されました: %v", err)
	}
	if serr.Kind != KindNotFound {
		t.Errorf("失敗分類が一致しません: got %s, want %s", serr.Kind, KindNotFound)
	}
}

// TestFileReaderPermissionDenied は権限エラーがKindIOへ分類されることをテストする
func TestFileReaderPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("rootでは権限エラーを再現できないためスキップ")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "secret.html")
	if err := os.WriteFile(path, []byte("secret"), 0o000); err != nil {
		t.Fatalf("テストファイルの作成に失敗しました: %v", err)
	}

	reader := NewFileReader()
	_, err := reader.ReadFile(context.Background(), path)
	if err == nil {
		t.Fatal("エラーが期待されましたが、エラーが発生しませんでした")
	}

	var serr *Error
	if !errors.As(err, &serr) {
		t.Fatalf("Error型ではないエラーが返されました: %v", err)
	}
	if serr.Kind != KindIO {
		t.Errorf("失敗分類が一致しません: got %s, want %s", serr.Kind, KindIO)
	}
	if serr.Code != "EACCES" {
		t.Errorf("エラーコードが一致しません: got %s, want EACCES", serr.Code)
	}
}

// TestFileReaderContextCanceled はキャンセル済みコンテキストでの中断をテストする
func TestFileReaderContextCanceled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte("<p>hi</p>"), 0o644); err != nil {
		t.Fatalf("テストファイルの作成に失敗しました: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := NewFileReader()
	_, err := reader.ReadFile(ctx, path)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("コンテキストキャンセルが伝播していません: %v", err)
	}
}
