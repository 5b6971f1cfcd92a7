package invalidation

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cfinvalidate/internal/service/cfn"
	"cfinvalidate/internal/service/cloudfront"
	"cfinvalidate/internal/service/common"
)

// Resolver は無効化対象をディストリビューションIDに解決する
type Resolver struct {
	distributions cloudfront.DistributionLister
	stacks        cfn.StackDescriber
	stackName     string
	out           io.Writer
}

// NewResolver は新しいResolverを作成
func NewResolver(distributions cloudfront.DistributionLister, stacks cfn.StackDescriber, stackName string, out io.Writer) *Resolver {
	return &Resolver{
		distributions: distributions,
		stacks:        stacks,
		stackName:     stackName,
		out:           out,
	}
}

// Resolve はPlanの解決方式に従ってディストリビューションIDを返す
//
// スタック出力に一致するキーがない場合は空のIDを1件返す。
// 空IDでの送信は失敗し、呼び出し側でスタック出力の取得失敗として報告される。
func (r *Resolver) Resolve(ctx context.Context, plan Plan) ([]string, error) {
	switch plan.Strategy {
	case StrategyDistributionId:
		return []string{plan.DistributionId}, nil
	case StrategyOrigin:
		return r.resolveByOrigin(ctx, plan.Origins)
	case StrategyStackOutput:
		return r.resolveByStackOutput(ctx, plan.OutputKey)
	default:
		return nil, ErrNoStrategy
	}
}

func (r *Resolver) resolveByOrigin(ctx context.Context, origins common.PatternSet) ([]string, error) {
	originList := strings.Join(origins.Patterns(), ", ")
	fmt.Fprintf(r.out, common.SearchingFormat+"\n", common.SearchIcon, "オリジン ["+originList+"] を持つディストリビューション")

	distributions, err := cloudfront.ListDistributions(ctx, r.distributions)
	if err != nil {
		return nil, err
	}

	ids := cloudfront.FilterByOrigin(distributions, origins)
	if len(ids) == 0 {
		fmt.Fprintf(r.out, "%s  オリジン [%s] に一致するディストリビューションが見つかりませんでした\n", common.WarningIcon, originList)
		return nil, nil
	}
	for _, id := range ids {
		fmt.Fprintf(r.out, "%s 検出されたディストリビューション: %s\n", common.SearchIcon, id)
	}
	return ids, nil
}

func (r *Resolver) resolveByStackOutput(ctx context.Context, key string) ([]string, error) {
	fmt.Fprintf(r.out, common.SearchingFormat+"\n", common.SearchIcon, "スタック '"+r.stackName+"' の出力 '"+key+"'")

	outputs, err := cfn.GetStackOutputs(ctx, r.stacks, r.stackName)
	if err != nil {
		return nil, err
	}

	value, ok := cfn.FindOutputValue(outputs, key)
	if !ok {
		fmt.Fprintf(r.out, "%s  スタック '%s' に出力 '%s' が見つかりませんでした\n", common.WarningIcon, r.stackName, key)
		return []string{""}, nil
	}
	fmt.Fprintf(r.out, "%s スタック出力 '%s' からディストリビューション '%s' を検出しました\n", common.SuccessIcon, key, value)
	return []string{value}, nil
}
