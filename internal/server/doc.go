// Package server は、HTTPサーバーと静的ファイル配信のハンドラを管理します。
//
// このパッケージは、HTTPサーバーの起動、ルーティング、
// 静的ファイルの配信、エラーレスポンスの生成を担当します。
//
// 責務:
//   - HTTPサーバーの起動と管理
//   - 静的ファイル（HTML/CSS/JS/画像）の配信
//   - 失敗分類からHTTPステータスコードへの変換
//   - ヘルスチェック・ステータスエンドポイントの提供
//   - リクエストログの出力
//
// 仕様:
//   - HTTPフレームワークはgin-gonic/ginを使用
//   - 配信メソッドはGET/HEADのみ。その他は405を返す
//   - 1リクエストにつき必ず1つのレスポンスを返す
//   - グレースフルシャットダウンに対応
//   - 複数クライアントの同時接続をサポート（遅いリクエストが他を妨げない）
package server
