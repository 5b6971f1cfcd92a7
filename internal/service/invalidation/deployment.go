package invalidation

// Deployment は現在のデプロイコンテキスト
type Deployment struct {
	Service   string
	Stage     string
	StackName string // 空の場合は "<Service>-<Stage>"
}

// ResolveStackName は出力を参照するCloudFormationスタック名を返す
func (d Deployment) ResolveStackName() string {
	if d.StackName != "" {
		return d.StackName
	}
	return d.Service + "-" + d.Stage
}
