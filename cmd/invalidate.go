package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// invalidateCmd represents the invalidate command
var invalidateCmd = &cobra.Command{
	Use:   "invalidate",
	Short: "設定ファイルの全対象のキャッシュを無効化",
	Long: `設定ファイル (custom.cloudfrontInvalidate) に宣言された全対象のキャッシュを無効化します。
autoInvalidate の設定に関係なく全対象を処理します。stage が指定された対象は現在のステージと一致する場合のみ処理します。

【使い方】
  ` + AppName + ` invalidate                        # serverless.yml を使用
  ` + AppName + ` invalidate -c cdn.yml -s prod     # 設定ファイルとステージを指定
  ` + AppName + ` invalidate --no-deploy            # 送信せずに終了`,
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

		if err := orchestrator.Invalidate(cmdCobra.Context(), file.Targets()); err != nil {
			return fmt.Errorf("❌ %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(invalidateCmd)
}
