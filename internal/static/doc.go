// Package static 静的ファイル配信のコアロジックを担う
//
// # 責務
// - リクエストパスからルート配下のファイルパスへの解決
// - パストラバーサルの検出と拒否
// - 拡張子からContent-Typeへの解決（MIMEテーブル）
// - ファイル読み込みと失敗の分類
//
// # 仕様
// - Resolver: `..` セグメントを含むパスは正規化前に拒否し、
//   結合後のパスがルート配下に収まることを検証する
// - Table: 起動時に確定する不変のマッピング。未知の拡張子は
//   application/octet-stream にフォールバックする
// - Reader: ファイル全体をメモリに読み込む。リトライやキャッシュは行わない
// - 失敗は Error 型で KindTraversal / KindNotFound / KindIO に分類される
//
// このパッケージはHTTP層に依存しない。ステータスコードへの変換は
// internal/server が担当する
package static
