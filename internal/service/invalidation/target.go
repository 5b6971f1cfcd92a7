package invalidation

import (
	"errors"
	"fmt"
	"strings"

	"cfinvalidate/internal/service/common"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoStrategy は distributionId / containsOrigin / distributionIdKey のいずれも指定されていない場合のエラー
	ErrNoStrategy = errors.New("distributionId、containsOrigin、distributionIdKey のいずれかを指定してください")
	// ErrNoItems は無効化するパスが指定されていない場合のエラー
	ErrNoItems = errors.New("items に無効化するパスを1つ以上指定してください")
)

// OriginList はオリジンのドメイン名一覧
// YAMLではカンマ区切りの文字列と配列のどちらでも記述できる
type OriginList []string

// ParseOriginList はカンマ区切りの文字列からオリジン一覧を作成する
func ParseOriginList(value string) OriginList {
	return OriginList(common.SplitList(value))
}

// UnmarshalYAML はスカラー（カンマ区切り）とシーケンスの両方を受け付ける
func (o *OriginList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*o = ParseOriginList(value.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*o = ParseOriginList(strings.Join(items, ","))
		return nil
	default:
		return fmt.Errorf("containsOrigin は文字列または文字列の配列で指定してください (line %d)", value.Line)
	}
}

// Target はキャッシュ無効化対象の宣言
type Target struct {
	DistributionId    string     `yaml:"distributionId"`
	ContainsOrigin    OriginList `yaml:"containsOrigin"`
	DistributionIdKey string     `yaml:"distributionIdKey"`
	Items             []string   `yaml:"items"`
	Stage             string     `yaml:"stage"`
	AutoInvalidate    *bool      `yaml:"autoInvalidate"` // 未指定の場合は true
}

// AutoInvalidateEnabled はデプロイ後の自動無効化の対象かどうかを返す
func (t Target) AutoInvalidateEnabled() bool {
	return t.AutoInvalidate == nil || *t.AutoInvalidate
}

// MatchesStage は現在のステージで処理すべき対象かどうかを返す
func (t Target) MatchesStage(stage string) bool {
	return t.Stage == "" || t.Stage == stage
}

// String は診断メッセージ用に対象を1行で表す
func (t Target) String() string {
	switch t.Strategy() {
	case StrategyDistributionId:
		return "distributionId=" + t.DistributionId
	case StrategyOrigin:
		return "containsOrigin=" + strings.Join(t.ContainsOrigin, ",")
	case StrategyStackOutput:
		return "distributionIdKey=" + t.DistributionIdKey
	default:
		return "(解決方式未指定)"
	}
}

// Strategy はディストリビューションIDの解決方式
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyDistributionId
	StrategyOrigin
	StrategyStackOutput
)

func (s Strategy) String() string {
	switch s {
	case StrategyDistributionId:
		return "distributionId"
	case StrategyOrigin:
		return "containsOrigin"
	case StrategyStackOutput:
		return "distributionIdKey"
	default:
		return "none"
	}
}

// Strategy は優先順位 distributionId > containsOrigin > distributionIdKey で解決方式を決定する
func (t Target) Strategy() Strategy {
	switch {
	case t.DistributionId != "":
		return StrategyDistributionId
	case len(t.ContainsOrigin) > 0:
		return StrategyOrigin
	case t.DistributionIdKey != "":
		return StrategyStackOutput
	default:
		return StrategyNone
	}
}

// Plan は検証済みの無効化対象
// Strategy に応じて DistributionId / Origins / OutputKey のいずれか一つだけが意味を持つ
type Plan struct {
	Strategy       Strategy
	DistributionId string
	Origins        common.PatternSet
	OutputKey      string
	Items          []string
}

// Plan は宣言を検証し、解決方式ごとのPlanに変換する
func (t Target) Plan() (Plan, error) {
	plan := Plan{Strategy: t.Strategy(), Items: t.Items}

	switch plan.Strategy {
	case StrategyDistributionId:
		plan.DistributionId = t.DistributionId
	case StrategyOrigin:
		origins, err := common.CompilePatterns(t.ContainsOrigin)
		if err != nil {
			return Plan{}, fmt.Errorf("containsOrigin が不正です: %w", err)
		}
		plan.Origins = origins
	case StrategyStackOutput:
		plan.OutputKey = t.DistributionIdKey
	default:
		return Plan{}, ErrNoStrategy
	}

	if len(t.Items) == 0 {
		return Plan{}, ErrNoItems
	}
	return plan, nil
}
