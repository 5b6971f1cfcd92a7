package cmd

import (
	"testing"

	"cfinvalidate/internal/service/invalidation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	stage, serviceName, stackName = "", "", ""
	t.Cleanup(func() { stage, serviceName, stackName = "", "", "" })
}

func TestResolveDeployment(t *testing.T) {
	file, err := invalidation.Parse([]byte("service: my-service\nprovider:\n  stage: staging\n"))
	require.NoError(t, err)

	t.Run("設定ファイルの値を使用", func(t *testing.T) {
		resetFlags(t)
		t.Setenv("CFI_STAGE", "")
		t.Setenv("CFI_SERVICE", "")
		t.Setenv("AWS_STACK_NAME", "")

		d := resolveDeployment(file)
		assert.Equal(t, invalidation.Deployment{Service: "my-service", Stage: "staging"}, d)
		assert.Equal(t, "my-service-staging", d.ResolveStackName())
	})

	t.Run("環境変数が設定ファイルより優先", func(t *testing.T) {
		resetFlags(t)
		t.Setenv("CFI_STAGE", "qa")
		t.Setenv("CFI_SERVICE", "env-service")
		t.Setenv("AWS_STACK_NAME", "env-stack")

		d := resolveDeployment(file)
		assert.Equal(t, invalidation.Deployment{Service: "env-service", Stage: "qa", StackName: "env-stack"}, d)
	})

	t.Run("フラグが最優先", func(t *testing.T) {
		resetFlags(t)
		t.Setenv("CFI_STAGE", "qa")
		t.Setenv("AWS_STACK_NAME", "")
		stage = "prod"
		serviceName = "flag-service"

		d := resolveDeployment(file)
		assert.Equal(t, "prod", d.Stage)
		assert.Equal(t, "flag-service", d.Service)
	})

	t.Run("ステージ未指定ならdev", func(t *testing.T) {
		resetFlags(t)
		t.Setenv("CFI_STAGE", "")
		t.Setenv("AWS_STACK_NAME", "")
		empty, err := invalidation.Parse([]byte("service: svc\n"))
		require.NoError(t, err)

		assert.Equal(t, invalidation.DefaultStage, resolveDeployment(empty).Stage)
	})
}

func TestTargetsToTableData(t *testing.T) {
	no := false
	targets := []invalidation.Target{
		{DistributionId: "E1", Items: []string{"/a", "/b"}},
		{ContainsOrigin: invalidation.ParseOriginList("cdn.example.com"), Items: []string{"/x"}, Stage: "prod", AutoInvalidate: &no},
		{DistributionIdKey: "CFId"},
	}

	columns, data := targetsToTableData(targets, "dev")
	require.Len(t, columns, 7)
	require.Len(t, data, 3)

	assert.Equal(t, []string{"1", "distributionId", "E1", "(全て)", "yes", "/a /b", "OK"}, data[0])
	assert.Equal(t, []string{"2", "containsOrigin", "cdn.example.com", "prod", "no", "/x", "スキップ（ステージ不一致）"}, data[1])
	assert.Equal(t, "CFId", data[2][2])
	assert.Contains(t, data[2][6], invalidation.ErrNoItems.Error())
}
