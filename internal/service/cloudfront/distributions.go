package cloudfront

import (
	"context"
	"fmt"

	"cfinvalidate/internal/service/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
)

// ListDistributions はアカウントから参照可能な全ディストリビューションを取得します
// 結果はキャッシュせず、呼び出しごとに全ページを取得し直します
func ListDistributions(ctx context.Context, client DistributionLister) ([]DistributionInfo, error) {
	var distributions []DistributionInfo
	var nextMarker *string

	for {
		input := &cloudfront.ListDistributionsInput{}
		if nextMarker != nil {
			input.Marker = nextMarker
		}

		result, err := client.ListDistributions(ctx, input)
		if err != nil {
			return nil, fmt.Errorf(common.ListErrorFormat, "ディストリビューション", err)
		}

		list := result.DistributionList
		if list == nil {
			break
		}
		for _, summary := range list.Items {
			distributions = append(distributions, toDistributionInfo(summary))
		}

		// 次のページがなければ終了
		if !aws.ToBool(list.IsTruncated) || aws.ToString(list.NextMarker) == "" {
			break
		}
		nextMarker = list.NextMarker
	}

	return distributions, nil
}

// FilterByOrigin はオリジンがパターンにマッチするディストリビューションのIDを返します
func FilterByOrigin(distributions []DistributionInfo, origins common.PatternSet) []string {
	var ids []string
	for _, d := range distributions {
		if origins.MatchAny(d.Origins) {
			ids = append(ids, d.Id)
		}
	}
	return ids
}

func toDistributionInfo(summary types.DistributionSummary) DistributionInfo {
	info := DistributionInfo{
		Id:         aws.ToString(summary.Id),
		DomainName: aws.ToString(summary.DomainName),
		Comment:    aws.ToString(summary.Comment),
		Enabled:    aws.ToBool(summary.Enabled),
	}
	if summary.Origins != nil {
		for _, origin := range summary.Origins.Items {
			info.Origins = append(info.Origins, aws.ToString(origin.DomainName))
		}
	}
	return info
}
