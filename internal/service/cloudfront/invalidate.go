package cloudfront

import (
	"context"
	"errors"
	"fmt"

	"cfinvalidate/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
)

// BuildInvalidationInput はキャッシュ無効化リクエストを組み立てます
// distributionId が空の場合は未設定のまま組み立て、送信時にSDKの検証エラーとなります
func BuildInvalidationInput(distributionId, callerReference string, paths []string) *cloudfront.CreateInvalidationInput {
	// パスをAWS SDKの形式に変換（順序は維持）
	items := make([]string, 0, len(paths))
	items = append(items, paths...)

	input := &cloudfront.CreateInvalidationInput{
		InvalidationBatch: &types.InvalidationBatch{
			CallerReference: aws.String(callerReference),
			Paths: &types.Paths{
				Quantity: aws.Int32(int32(len(items))),
				Items:    items,
			},
		},
	}
	if distributionId != "" {
		input.DistributionId = aws.String(distributionId)
	}
	return input
}

// CreateInvalidation はCloudFrontディストリビューションのキャッシュ無効化を送信し、無効化IDを返します
func CreateInvalidation(ctx context.Context, client InvalidationAPI, distributionId, callerReference string, paths []string) (string, error) {
	input := BuildInvalidationInput(distributionId, callerReference, paths)

	result, err := client.CreateInvalidation(ctx, input)
	if err != nil {
		return "", fmt.Errorf(common.CreateErrorFormat, "キャッシュ無効化", err)
	}
	if result.Invalidation == nil {
		return "", errors.New("無効化IDがレスポンスに含まれていません")
	}

	return aws.ToString(result.Invalidation.Id), nil
}
