package cfn

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// StackOutput はCloudFormationスタックの出力値を表す構造体
type StackOutput struct {
	Key   string
	Value string
}

// StackDescriber はスタック情報の取得に必要なCloudFormation APIのサブセット
type StackDescriber interface {
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
}
