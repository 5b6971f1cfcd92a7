package cfn

import (
	"context"
	"fmt"

	"cfinvalidate/internal/service/common"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// GetStackOutputs はスタックの出力一覧を取得する関数
// スタックが存在しない場合やレスポンスにスタックが含まれない場合は空の一覧を返す
func GetStackOutputs(ctx context.Context, cfnClient StackDescriber, stackName string) ([]StackOutput, error) {
	resp, err := cfnClient.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: awssdk.String(stackName),
	})
	if err != nil {
		return nil, fmt.Errorf(common.GetErrorFormat, "スタック '"+stackName+"' の情報", err)
	}

	if len(resp.Stacks) == 0 {
		return nil, nil
	}

	outputs := make([]StackOutput, 0, len(resp.Stacks[0].Outputs))
	for _, o := range resp.Stacks[0].Outputs {
		outputs = append(outputs, StackOutput{
			Key:   awssdk.ToString(o.OutputKey),
			Value: awssdk.ToString(o.OutputValue),
		})
	}
	return outputs, nil
}

// FindOutputValue は出力一覧からキーが一致する値を探す
func FindOutputValue(outputs []StackOutput, key string) (string, bool) {
	for _, o := range outputs {
		if o.Key == key {
			return o.Value, true
		}
	}
	return "", false
}
