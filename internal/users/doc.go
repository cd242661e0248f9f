// Package users はusers-api（ユーザーディレクトリサービス）の内部実装を提供する。
//
// 起動時に固定のユーザーテーブルを構築し、一覧取得・ID指定取得・
// ヘルスチェックの読み取り専用APIを公開する。テーブルは起動後に変更されないため、
// 同時に処理されるリクエスト間でロックは不要。
package users
