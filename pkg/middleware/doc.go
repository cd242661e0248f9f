// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// リクエストIDの採番、リクエストログ、パニックリカバリ、
// CORS設定など、users-apiとorders-apiで共通して使用するミドルウェアと、
// パスパラメータの解釈などハンドラ向けの補助関数を含む。
package middleware
