package common

// TableColumn はテーブルの列定義
type TableColumn struct {
	Header string
	Width  int // 0の場合は内容から自動計算
}
