package aws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCABundle(t *testing.T) {
	t.Run("フラグ指定が優先される", func(t *testing.T) {
		t.Setenv("AWS_CA_BUNDLE", "/env/bundle.pem")
		assert.Equal(t, "/flag/bundle.pem", ResolveCABundle("/flag/bundle.pem"))
	})

	t.Run("AWS_CA_BUNDLEを参照する", func(t *testing.T) {
		t.Setenv("AWS_CA_BUNDLE", "/env/bundle.pem")
		t.Setenv("cafile", "/env/cafile.pem")
		assert.Equal(t, "/env/bundle.pem", ResolveCABundle(""))
	})

	t.Run("cafileにフォールバックする", func(t *testing.T) {
		t.Setenv("AWS_CA_BUNDLE", "")
		t.Setenv("cafile", "/env/cafile.pem")
		assert.Equal(t, "/env/cafile.pem", ResolveCABundle(""))
	})

	t.Run("未指定なら空", func(t *testing.T) {
		t.Setenv("AWS_CA_BUNDLE", "")
		t.Setenv("cafile", "")
		assert.Empty(t, ResolveCABundle(""))
	})
}

func TestLoadAwsConfig_MissingCABundle(t *testing.T) {
	_, err := LoadAwsConfig(Context{Region: "us-east-1", CABundle: "/does/not/exist.pem"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/does/not/exist.pem")
}

func TestLoadAwsConfig_Region(t *testing.T) {
	t.Setenv("AWS_CA_BUNDLE", "")
	t.Setenv("cafile", "")
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")

	ctx := &Context{Region: "ap-northeast-1"}
	cfg, err := ctx.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "ap-northeast-1", cfg.Region)

	clients := NewClientsFromConfig(cfg)
	assert.Same(t, clients.CloudFront(), clients.CloudFront())
	assert.Same(t, clients.Cfn(), clients.Cfn())
}
