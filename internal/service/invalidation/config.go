package invalidation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile は設定ファイルの既定パス
const DefaultConfigFile = "serverless.yml"

// DefaultStage はステージ未指定時のステージ名
const DefaultStage = "dev"

// File は無効化対象を宣言する設定ファイル
//
//	service: my-service
//	provider:
//	  stage: dev
//	custom:
//	  cloudfrontInvalidate:
//	    - distributionId: E2ABC123DEF456
//	      items: ["/index.html"]
type File struct {
	Service  string `yaml:"service"`
	Provider struct {
		Stage string `yaml:"stage"`
	} `yaml:"provider"`
	Custom struct {
		CloudfrontInvalidate []Target `yaml:"cloudfrontInvalidate"`
	} `yaml:"custom"`
}

// Targets は宣言された無効化対象を返す。未定義の場合はnil
func (f *File) Targets() []Target {
	return f.Custom.CloudfrontInvalidate
}

// Parse は設定ファイルの内容を解析する
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("設定ファイルの解析に失敗: %w", err)
	}
	return &f, nil
}

// LoadFile は設定ファイルを読み込む
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("設定ファイル '%s' の読み込みに失敗: %w", path, err)
	}
	return Parse(data)
}
