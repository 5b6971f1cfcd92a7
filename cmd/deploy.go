package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// afterDeployCmd represents the after-deploy command
var afterDeployCmd = &cobra.Command{
	Use:   "after-deploy",
	Short: "デプロイ後の自動キャッシュ無効化",
	Long: `デプロイ完了後のフックとして実行するコマンドです。
autoInvalidate: false が指定された対象を除いてキャッシュを無効化します。

【使い方】
  ` + AppName + ` after-deploy -s prod
  ` + AppName + ` after-deploy -s prod --no-deploy  # デプロイをスキップした場合`,
	Args: cobra.NoArgs,
	RunE: func(cmdCobra *cobra.Command, args []string) error {
		file, err := loadConfig()
		if err != nil {
			return err
		}
		deployment := resolveDeployment(file)
		printDeployment(cmdCobra, deployment)

		orchestrator, finish, err := newOrchestrator(cmdCobra, deployment, len(file.Targets()))
		if err != nil {
			return err
		}
		defer finish()

		if err := orchestrator.InvalidateAfterDeploy(cmdCobra.Context(), file.Targets()); err != nil {
			return fmt.Errorf("❌ %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(afterDeployCmd)
}
