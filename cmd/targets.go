package cmd

import (
	"fmt"
	"strings"

	"cfinvalidate/internal/service/common"
	"cfinvalidate/internal/service/invalidation"

	"github.com/spf13/cobra"
)

// targetsCmd represents the targets command
var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "設定ファイルの無効化対象を一覧表示",
	Long: `設定ファイルに宣言された無効化対象を検証し、一覧表示します。AWSへのアクセスは行いません。

【使い方】
  ` + AppName + ` targets
  ` + AppName + ` targets -c cdn.yml -s prod`,
	Args: cobra.NoArgs,
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		file, err := loadConfig()
		if err != nil {
			return err
		}
		targets := file.Targets()
		if targets == nil {
			return fmt.Errorf("❌ %w", invalidation.ErrNoTargets)
		}

		deployment := resolveDeployment(file)
		printDeployment(cmdCobra, deployment)

		columns, data := targetsToTableData(targets, deployment.Stage)
		common.PrintTable(cmdCobra.OutOrStdout(), fmt.Sprintf("無効化対象一覧 (全%d件)", len(targets)), columns, data)
		return nil
	},
}

// targetsToTableData は無効化対象をテーブル表示用のデータに変換する
func targetsToTableData(targets []invalidation.Target, currentStage string) ([]common.TableColumn, [][]string) {
	columns := []common.TableColumn{
		{Header: "#"},
		{Header: "解決方式"},
		{Header: "値"},
		{Header: "ステージ"},
		{Header: "自動"},
		{Header: "パス"},
		{Header: "状態"},
	}

	data := make([][]string, 0, len(targets))
	for i, t := range targets {
		value := ""
		switch t.Strategy() {
		case invalidation.StrategyDistributionId:
			value = t.DistributionId
		case invalidation.StrategyOrigin:
			value = strings.Join(t.ContainsOrigin, ",")
		case invalidation.StrategyStackOutput:
			value = t.DistributionIdKey
		}

		targetStage := t.Stage
		if targetStage == "" {
			targetStage = "(全て)"
		}
		auto := "yes"
		if !t.AutoInvalidateEnabled() {
			auto = "no"
		}

		status := "OK"
		if _, err := t.Plan(); err != nil {
			status = common.ErrorIcon + " " + err.Error()
		} else if !t.MatchesStage(currentStage) {
			status = "スキップ（ステージ不一致）"
		}

		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			t.Strategy().String(),
			value,
			targetStage,
			auto,
			strings.Join(t.Items, " "),
			status,
		})
	}
	return columns, data
}

func init() {
	RootCmd.AddCommand(targetsCmd)
}
