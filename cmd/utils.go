package cmd

import (
	"fmt"
	"os"

	"cfinvalidate/internal/aws"
	"cfinvalidate/internal/service/common"
	"cfinvalidate/internal/service/invalidation"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// resolveStackName はコマンドライン引数または環境変数からスタック名を決定し、グローバル変数 stackName にセットする
func resolveStackName() {
	if stackName != "" {
		fmt.Println("🔍 -Sオプションで指定されたスタック名 '" + stackName + "' を使用します")
		return
	}
	envStack := os.Getenv("AWS_STACK_NAME")
	if envStack != "" {
		fmt.Println("🔍 環境変数 AWS_STACK_NAME の値 '" + envStack + "' を使用します")
		stackName = envStack
	}
	// どちらもなければstackNameは空のまま（<service>-<stage> を使用）
}

// firstNonEmpty は最初の空でない値を返す
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveDeployment はフラグ・環境変数・設定ファイルの順でデプロイコンテキストを決定する
func resolveDeployment(file *invalidation.File) invalidation.Deployment {
	resolveStackName()
	return invalidation.Deployment{
		Service:   firstNonEmpty(serviceName, os.Getenv("CFI_SERVICE"), file.Service),
		Stage:     firstNonEmpty(stage, os.Getenv("CFI_STAGE"), file.Provider.Stage, invalidation.DefaultStage),
		StackName: stackName,
	}
}

// loadConfig は設定ファイルを読み込む
func loadConfig() (*invalidation.File, error) {
	file, err := invalidation.LoadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("❌ %w", err)
	}
	return file, nil
}

// newOrchestrator はAWSクライアントを生成してOrchestratorを組み立てる
// 返り値の関数は進捗バーの後始末を行う
func newOrchestrator(cmd *cobra.Command, deployment invalidation.Deployment, targetCount int) (*invalidation.Orchestrator, func(), error) {
	clients, err := aws.NewAwsClients(awsCtx)
	if err != nil {
		return nil, nil, fmt.Errorf("❌ AWS設定の読み込みに失敗: %w", err)
	}

	opts := invalidation.Options{
		NoDeploy: noDeploy,
		Out:      cmd.OutOrStdout(),
	}

	finish := func() {}
	if showProgress && !noDeploy && targetCount > 0 {
		bar := newProgressBar(targetCount)
		opts.Progress = bar
		finish = func() {
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)
		}
	}

	return invalidation.New(clients.CloudFront(), clients.Cfn(), deployment, opts), finish, nil
}

// newProgressBar は対象ごとの進捗バーを標準エラー出力に作成する
func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("無効化中..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
	)
}

// printDeployment は実行対象のデプロイコンテキストを表示する
func printDeployment(cmd *cobra.Command, deployment invalidation.Deployment) {
	cmd.Printf("%s サービス: %s / ステージ: %s / スタック: %s\n",
		common.InfoIcon, deployment.Service, deployment.Stage, deployment.ResolveStackName())
}
