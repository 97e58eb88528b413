package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomas-polach/ecs-composex/internal/testutil"
)

func vetContent(t *testing.T, content string) []Issue {
	t.Helper()
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "compose.yaml", content)

	issues, err := Vet([]string{path})
	require.NoError(t, err)
	return issues
}

func TestVetCleanProject(t *testing.T) {
	issues := vetContent(t, renderProject)
	assert.Empty(t, issues)
}

func TestVetNamespaceIssues(t *testing.T) {
	issues := vetContent(t, `
x-cloudmap:
  bad: {}
  one:
    ZoneName: apps.internal
  two:
    ZoneName: apps.internal
  renamed:
    ZoneName: db.internal
    Properties:
      Name: other.internal
`)

	require.Len(t, issues, 3)
	for _, issue := range issues {
		assert.True(t, issue.IsError())
	}
	assert.Equal(t, "x-cloudmap.bad", issues[0].Location)
	assert.Contains(t, issues[0].Message, "ZoneName is required")
	assert.Contains(t, issues[1].Message, "Properties.Name must match ZoneName")
	assert.Contains(t, issues[2].Message, "already declared")
}

func TestVetSettingsIssues(t *testing.T) {
	issues := vetContent(t, `
x-cloudmap:
  internal:
    ZoneName: db.internal

x-rds:
  db1:
    x-cloudmap:
      Namespace: missing
      ReturnValues:
        Hostname: DB_HOST

x-sqs:
  queue1:
    x-cloudmap:
      Namespace: internal
      AdditionalAttributes:
        AWS_INSTANCE_IPV4: 10.0.0.1
      DnsSettings:
        Hostname: queue
`)

	var errorsFound, warningsFound []Issue
	for _, issue := range issues {
		if issue.IsError() {
			errorsFound = append(errorsFound, issue)
		} else {
			warningsFound = append(warningsFound, issue)
		}
	}

	require.Len(t, errorsFound, 2)
	assert.Contains(t, errorsFound[0].Message, `namespace "missing"`)
	assert.Contains(t, errorsFound[1].Message, `ReturnValues key "Hostname"`)

	require.Len(t, warningsFound, 2)
	assert.Contains(t, warningsFound[0].Message, "does not support DnsSettings")
	assert.Contains(t, warningsFound[1].Message, "reserved AWS_ prefix")
}
