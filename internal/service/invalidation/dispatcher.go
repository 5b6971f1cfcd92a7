package invalidation

import (
	"context"
	"fmt"

	"cfinvalidate/internal/service/cloudfront"
	"cfinvalidate/internal/service/common"
)

// Job は1ディストリビューションに対する無効化リクエスト
type Job struct {
	DistributionId string
	Reference      string
	Items          []string
}

// dispatch は対象を1件ずつ順番に処理する
// 個々の対象・リクエストの失敗は報告のみ行い、一覧の処理は最後まで続ける
func (o *Orchestrator) dispatch(ctx context.Context, targets []Target) {
	if o.opts.NoDeploy {
		fmt.Fprintf(o.opts.Out, "%s  --no-deploy が指定されているため、CloudFrontのキャッシュ無効化をスキップします\n", common.WarningIcon)
		return
	}

	for _, t := range targets {
		o.dispatchTarget(ctx, t)
		if o.opts.Progress != nil {
			_ = o.opts.Progress.Add(1)
		}
	}
}

func (o *Orchestrator) dispatchTarget(ctx context.Context, t Target) {
	reference := o.opts.NewReference()

	if !t.MatchesStage(o.deployment.Stage) {
		return
	}

	plan, err := t.Plan()
	if err != nil {
		fmt.Fprintf(o.opts.Out, "%s %s をスキップします: %v\n", common.ErrorIcon, t, err)
		return
	}

	ids, err := o.resolver.Resolve(ctx, plan)
	if err != nil {
		fmt.Fprintf(o.opts.Out, "%s %s のディストリビューション解決に失敗: %s\n", common.ErrorIcon, t, common.DescribeAwsError(err))
		return
	}

	for _, id := range ids {
		o.submit(ctx, plan, Job{DistributionId: id, Reference: reference, Items: plan.Items})
		o.opts.Sleep(o.opts.Pacing)
	}
}

// submit は1件の無効化リクエストを送信する。失敗は報告して握りつぶす
func (o *Orchestrator) submit(ctx context.Context, plan Plan, job Job) {
	fmt.Fprintf(o.opts.Out, "%s CloudFrontディストリビューション (%s) のキャッシュを無効化します...\n", common.StartIcon, job.DistributionId)
	fmt.Fprintf(o.opts.Out, "   対象パス: %v\n", job.Items)

	invalidationId, err := cloudfront.CreateInvalidation(ctx, o.cloudFront, job.DistributionId, job.Reference, job.Items)
	if err != nil {
		if plan.Strategy == StrategyStackOutput && job.DistributionId == "" {
			fmt.Fprintf(o.opts.Out, "%s %s: スタック出力からディストリビューションIDを取得できませんでした。テンプレートを確認してください (%s)\n",
				common.ErrorIcon, plan.OutputKey, common.DescribeAwsError(err))
			return
		}
		fmt.Fprintf(o.opts.Out, "%s ディストリビューション (%s) のキャッシュ無効化に失敗: %s\n", common.ErrorIcon, job.DistributionId, common.DescribeAwsError(err))
		return
	}

	fmt.Fprintf(o.opts.Out, "%s キャッシュ無効化を開始しました (ID: %s)\n", common.SuccessIcon, invalidationId)
}
