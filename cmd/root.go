package cmd

import (
	"os"

	"cfinvalidate/internal/aws"
	"cfinvalidate/internal/service/invalidation"

	"github.com/spf13/cobra"
)

// AppName はコマンド名
const AppName = "cfinvalidate"

var region string
var profile string
var stackName string
var stage string
var serviceName string
var configFile string
var caBundle string
var noDeploy bool
var showProgress bool

// awsCtx は全コマンド共通のAWS認証情報
var awsCtx = &aws.Context{}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   AppName,
	Short: "CloudFrontキャッシュ無効化ツール",
	Long: `設定ファイルに宣言したCloudFrontディストリビューションのキャッシュを無効化します。

ディストリビューションはID直接指定、オリジンのドメイン名、CloudFormationスタック出力の
いずれかで指定でき、1件ずつ間隔を空けて無効化リクエストを送信します。`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&region, "region", "R", "", "AWSリージョン")
	RootCmd.PersistentFlags().StringVarP(&profile, "profile", "P", "", "AWSプロファイル")
	RootCmd.PersistentFlags().StringVarP(&stackName, "stack", "S", "", "CloudFormationスタック名（デフォルト: <service>-<stage>）")
	RootCmd.PersistentFlags().StringVarP(&stage, "stage", "s", "", "デプロイステージ")
	RootCmd.PersistentFlags().StringVar(&serviceName, "service", "", "サービス名")
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", invalidation.DefaultConfigFile, "設定ファイル")
	RootCmd.PersistentFlags().StringVar(&caBundle, "cacert", "", "CA証明書バンドルのパス（プロキシ環境向け）")
	RootCmd.PersistentFlags().BoolVar(&noDeploy, "no-deploy", false, "無効化リクエストを送信しない")
	RootCmd.PersistentFlags().BoolVar(&showProgress, "progress", false, "進捗バーを表示")

	// コマンド実行前に共通でプロファイルチェックを行う
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// ヘルプコマンドの場合はスキップ
		if cmd.Name() == "help" {
			return nil
		}
		checkAndSetProfile(cmd)
		awsCtx.Profile = profile
		awsCtx.Region = region
		awsCtx.CABundle = caBundle
		return nil
	}
}

// checkAndSetProfile はプロファイルの確認と設定を行うプライベート関数
// CI環境などプロファイルを使わない場合はSDKのデフォルトの認証情報チェーンに任せる
func checkAndSetProfile(cmd *cobra.Command) {
	// プロファイルがすでに指定されている場合は何もしない
	if profile != "" {
		return
	}
	// 環境変数からプロファイル取得を試みる
	envProfile := os.Getenv("AWS_PROFILE")
	if envProfile == "" {
		return
	}
	profile = envProfile
	// versionコマンド以外の場合のみメッセージを表示
	if cmd.Name() != "version" {
		cmd.Println("🔍 環境変数 AWS_PROFILE の値 '" + profile + "' を使用します")
	}
}
