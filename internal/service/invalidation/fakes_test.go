package invalidation

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	cfntypes "github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/aws/smithy-go"
)

// submission は送信されたリクエストの記録
type submission struct {
	DistributionId string
	Reference      string
	Items          []string
}

// fakeCloudFront はCloudFront APIの代替
type fakeCloudFront struct {
	distributions []cftypes.DistributionSummary
	listErr       error
	failIds       map[string]bool

	submissions []submission
	listCalls   int
	events      *[]string
}

func (f *fakeCloudFront) CreateInvalidation(_ context.Context, params *cloudfront.CreateInvalidationInput, _ ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error) {
	id := aws.ToString(params.DistributionId)
	f.submissions = append(f.submissions, submission{
		DistributionId: id,
		Reference:      aws.ToString(params.InvalidationBatch.CallerReference),
		Items:          params.InvalidationBatch.Paths.Items,
	})
	f.record("submit:" + id)

	// 実際のSDKと同様にID未設定は検証エラーとする
	if params.DistributionId == nil {
		return nil, errors.New("operation error CloudFront: CreateInvalidation, missing required field, CreateInvalidationInput.DistributionId")
	}
	if f.failIds[id] {
		return nil, &smithy.GenericAPIError{Code: "NoSuchDistribution", Message: "The specified distribution does not exist."}
	}
	return &cloudfront.CreateInvalidationOutput{
		Invalidation: &cftypes.Invalidation{Id: aws.String("INV-" + id)},
	}, nil
}

func (f *fakeCloudFront) ListDistributions(_ context.Context, _ *cloudfront.ListDistributionsInput, _ ...func(*cloudfront.Options)) (*cloudfront.ListDistributionsOutput, error) {
	f.listCalls++
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return &cloudfront.ListDistributionsOutput{
		DistributionList: &cftypes.DistributionList{
			Items:       f.distributions,
			IsTruncated: aws.Bool(false),
		},
	}, nil
}

func (f *fakeCloudFront) record(event string) {
	if f.events != nil {
		*f.events = append(*f.events, event)
	}
}

func (f *fakeCloudFront) submittedIds() []string {
	ids := make([]string, 0, len(f.submissions))
	for _, s := range f.submissions {
		ids = append(ids, s.DistributionId)
	}
	return ids
}

// fakeStacks はCloudFormation APIの代替
type fakeStacks struct {
	outputs map[string]map[string]string // スタック名 -> 出力キー -> 値
	err     error
	calls   []string
}

func (f *fakeStacks) DescribeStacks(_ context.Context, params *cloudformation.DescribeStacksInput, _ ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	name := aws.ToString(params.StackName)
	f.calls = append(f.calls, name)
	if f.err != nil {
		return nil, f.err
	}
	outputs, ok := f.outputs[name]
	if !ok {
		return &cloudformation.DescribeStacksOutput{}, nil
	}
	stack := cfntypes.Stack{StackName: aws.String(name)}
	for k, v := range outputs {
		stack.Outputs = append(stack.Outputs, cfntypes.Output{OutputKey: aws.String(k), OutputValue: aws.String(v)})
	}
	return &cloudformation.DescribeStacksOutput{Stacks: []cfntypes.Stack{stack}}, nil
}

func distribution(id string, origins ...string) cftypes.DistributionSummary {
	items := make([]cftypes.Origin, 0, len(origins))
	for _, o := range origins {
		items = append(items, cftypes.Origin{DomainName: aws.String(o)})
	}
	return cftypes.DistributionSummary{
		Id:      aws.String(id),
		Origins: &cftypes.Origins{Quantity: aws.Int32(int32(len(items))), Items: items},
	}
}

// harness はテスト用のOrchestratorと記録先をまとめたもの
type harness struct {
	cf     *fakeCloudFront
	stacks *fakeStacks
	out    *bytes.Buffer
	sleeps []time.Duration
	events []string
	refs   int
}

func newHarness() *harness {
	h := &harness{
		stacks: &fakeStacks{outputs: map[string]map[string]string{}},
		out:    &bytes.Buffer{},
	}
	h.cf = &fakeCloudFront{failIds: map[string]bool{}, events: &h.events}
	return h
}

func (h *harness) orchestrator(deployment Deployment, opts Options) *Orchestrator {
	opts.Out = h.out
	opts.Sleep = func(d time.Duration) {
		h.sleeps = append(h.sleeps, d)
		h.events = append(h.events, "sleep")
	}
	opts.NewReference = func() string {
		h.refs++
		return "REF" + string(rune('A'+h.refs-1))
	}
	return New(h.cf, h.stacks, deployment, opts)
}

type countingProgress struct {
	count int
}

func (p *countingProgress) Add(num int) error {
	p.count += num
	return nil
}
