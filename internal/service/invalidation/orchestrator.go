package invalidation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"cfinvalidate/internal/service/cfn"
	"cfinvalidate/internal/service/cloudfront"
	"cfinvalidate/internal/service/common"
)

// DefaultPacing は無効化リクエスト送信ごとの待機時間
const DefaultPacing = 1000 * time.Millisecond

// ErrNoTargets は無効化対象の一覧自体が指定されていない場合のエラー
var ErrNoTargets = errors.New("custom.cloudfrontInvalidate に無効化対象が定義されていません")

// Progress は対象ごとの進捗通知先（progressbar.ProgressBar を想定）
type Progress interface {
	Add(num int) error
}

// Options は無効化実行のオプション
type Options struct {
	NoDeploy     bool                // trueの場合は一切送信しない
	Pacing       time.Duration       // 0以下の場合は DefaultPacing
	Out          io.Writer           // 診断メッセージの出力先（nilの場合は標準出力）
	Sleep        func(time.Duration) // nilの場合は time.Sleep
	NewReference func() string       // nilの場合は NewReference
	Progress     Progress            // nilの場合は進捗を通知しない
}

// Orchestrator は無効化対象の一覧を順番に処理する
type Orchestrator struct {
	cloudFront cloudfront.InvalidationAPI
	resolver   *Resolver
	deployment Deployment
	opts       Options
}

// New は新しいOrchestratorを作成
func New(cloudFront cloudfront.API, stacks cfn.StackDescriber, deployment Deployment, opts Options) *Orchestrator {
	if opts.Pacing <= 0 {
		opts.Pacing = DefaultPacing
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if opts.NewReference == nil {
		opts.NewReference = NewReference
	}

	return &Orchestrator{
		cloudFront: cloudFront,
		resolver:   NewResolver(cloudFront, stacks, deployment.ResolveStackName(), opts.Out),
		deployment: deployment,
		opts:       opts,
	}
}

// Invalidate は明示的な実行として、autoInvalidate に関係なく全対象を処理する
func (o *Orchestrator) Invalidate(ctx context.Context, targets []Target) error {
	if targets == nil {
		return ErrNoTargets
	}
	o.dispatch(ctx, targets)
	return nil
}

// InvalidateAfterDeploy はデプロイ後の自動実行として、autoInvalidate: false の対象を除いて処理する
func (o *Orchestrator) InvalidateAfterDeploy(ctx context.Context, targets []Target) error {
	if targets == nil {
		return ErrNoTargets
	}

	enabled := make([]Target, 0, len(targets))
	for _, t := range targets {
		if !t.AutoInvalidateEnabled() {
			fmt.Fprintf(o.opts.Out, "%s  %s は autoInvalidate: false のため自動無効化をスキップします\n", common.SkipIcon, t)
			continue
		}
		enabled = append(enabled, t)
	}

	o.dispatch(ctx, enabled)
	return nil
}
