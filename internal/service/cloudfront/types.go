package cloudfront

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
)

// DistributionInfo はCloudFrontディストリビューションの情報を保持する構造体
type DistributionInfo struct {
	Id         string
	DomainName string
	Comment    string
	Enabled    bool
	Origins    []string // オリジンのドメイン名
}

// InvalidationAPI はキャッシュ無効化リクエストの送信に必要なCloudFront APIのサブセット
type InvalidationAPI interface {
	CreateInvalidation(ctx context.Context, params *cloudfront.CreateInvalidationInput, optFns ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error)
}

// DistributionLister はディストリビューション一覧の取得に必要なCloudFront APIのサブセット
type DistributionLister interface {
	ListDistributions(ctx context.Context, params *cloudfront.ListDistributionsInput, optFns ...func(*cloudfront.Options)) (*cloudfront.ListDistributionsOutput, error)
}

// API はこのツールが利用するCloudFront APIの全体
type API interface {
	InvalidationAPI
	DistributionLister
}
