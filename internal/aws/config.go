package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// CABundleEnvVars はCA証明書バンドルのパスを探す環境変数（先勝ち）
var CABundleEnvVars = []string{"AWS_CA_BUNDLE", "cafile"}

// LoadAwsConfig は認証情報からAWS設定を読み込む
// HTTPS_PROXY / HTTP_PROXY はSDK標準のHTTPクライアントがそのまま参照する
func LoadAwsConfig(ctx Context) (aws.Config, error) {
	opts := make([]func(*config.LoadOptions) error, 0)

	if ctx.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(ctx.Profile))
	}
	if ctx.Region != "" {
		opts = append(opts, config.WithRegion(ctx.Region))
	}

	bundlePath := ResolveCABundle(ctx.CABundle)
	if bundlePath != "" {
		bundle, err := os.Open(bundlePath)
		if err != nil {
			return aws.Config{}, fmt.Errorf("CA証明書バンドル '%s' の読み込みに失敗: %w", bundlePath, err)
		}
		defer bundle.Close()
		opts = append(opts, config.WithCustomCABundle(bundle))
	}

	// バンドルはLoadDefaultConfig内で読み切られる
	return config.LoadDefaultConfig(context.Background(), opts...)
}

// ResolveCABundle はフラグ指定または環境変数からCA証明書バンドルのパスを決定する
func ResolveCABundle(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	for _, name := range CABundleEnvVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// GetConfig は遅延初期化でAWS設定を取得（初回のみ認証処理実行）
func (ctx *Context) GetConfig() (aws.Config, error) {
	if ctx.config == nil {
		cfg, err := LoadAwsConfig(*ctx)
		if err != nil {
			return aws.Config{}, err
		}
		ctx.config = &cfg
	}
	return *ctx.config, nil
}
