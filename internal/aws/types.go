package aws

import "github.com/aws/aws-sdk-go-v2/aws"

// Context AwsContext は認証情報と接続設定を保持
type Context struct {
	Profile  string
	Region   string
	CABundle string      // 独自CA証明書バンドルのパス（プロキシ環境向け）
	config   *aws.Config // AWS設定のキャッシュ（非公開）
}
