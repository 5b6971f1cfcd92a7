package common

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// メッセージの絵文字定数
const (
	ErrorIcon   = "❌"
	SuccessIcon = "✅"
	WarningIcon = "⚠️"
	SearchIcon  = "🔍"
	InfoIcon    = "📋"
	SkipIcon    = "⏭️"
	StartIcon   = "🚀"
)

// エラーメッセージフォーマット定数
const (
	// 一覧取得エラー
	ListErrorFormat = "%s一覧の取得に失敗: %w"

	// リソース操作エラー
	CreateErrorFormat = "%s の作成に失敗: %w"
	GetErrorFormat    = "%s の取得に失敗: %w"

	// 処理中メッセージ
	SearchingFormat = "%s %s を検索中..."
)

// DescribeAwsError はAWS APIエラーをエラーコード付きの1行メッセージに変換する
// API由来でないエラーはそのままの文字列を返す
func DescribeAwsError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err.Error()
}
