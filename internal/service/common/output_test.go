package common

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, "対象一覧", []TableColumn{{Header: "方式"}, {Header: "値"}}, [][]string{
		{"ID指定", "E2ABC"},
		{"origin", "cdn.example.com"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "対象一覧:", lines[1])
	// "ID指定" は表示幅6なので "origin" と同じ列幅になる
	assert.Equal(t, "方式   値              ", lines[2])
	assert.Equal(t, "------ --------------- ", lines[3])
	assert.Equal(t, "ID指定 E2ABC           ", lines[4])
	assert.Equal(t, "origin cdn.example.com ", lines[5])
}

func TestDescribeAwsError(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "NoSuchDistribution", Message: "The specified distribution does not exist."}

	assert.Equal(t, "NoSuchDistribution: The specified distribution does not exist.",
		DescribeAwsError(fmt.Errorf("wrapped: %w", apiErr)))
	assert.Equal(t, "boom", DescribeAwsError(errors.New("boom")))
	assert.Equal(t, "", DescribeAwsError(nil))
}
