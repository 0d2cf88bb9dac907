package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younsl/jaws/pkg/errs"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd(newApp(&bytes.Buffer{}))

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"res", "ec2", "gci", "ssm", "version"}, names)

	flags := root.PersistentFlags()
	for name, shorthand := range map[string]string{"region": "r", "wide": "w", "output": "o"} {
		f := flags.Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, shorthand, f.Shorthand)
	}
	assert.NotNil(t, flags.Lookup("config"))
	assert.NotNil(t, flags.Lookup("log-level"))
}

func TestResFlags(t *testing.T) {
	res, _, err := newRootCmd(newApp(&bytes.Buffer{})).Find([]string{"res"})
	require.NoError(t, err)

	f := res.Flags().Lookup("show-unused")
	require.NotNil(t, f)
	assert.Equal(t, "s", f.Shorthand)
	assert.NotNil(t, res.Flags().Lookup("prefer-expiring"))
}

func TestSSMRequiresInstanceID(t *testing.T) {
	root := newRootCmd(newApp(&bytes.Buffer{}))
	root.SetArgs([]string{"ssm"})
	root.SetOut(&bytes.Buffer{})

	err := root.ExecuteContext(context.Background())
	assert.Error(t, err)
}

func TestUnsupportedOutputFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	root := newRootCmd(newApp(&bytes.Buffer{}))
	root.SetArgs([]string{"version", "--output", "xml"})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestVersionJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	root := newRootCmd(newApp(&out))
	root.SetArgs([]string{"version", "-o", "json"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), `"version": "dev"`)
}

func TestSessionCommand(t *testing.T) {
	c := sessionCommand(context.Background(), "i-0123456789abcdef0", "ap-northeast-2")
	assert.Equal(t, []string{"aws", "ssm", "start-session", "--target", "i-0123456789abcdef0", "--region", "ap-northeast-2"}, c.Args)
}

func TestAbortBanner(t *testing.T) {
	var buf bytes.Buffer
	abort(&buf, &errs.ServiceError{Op: "DescribeReservedInstances", Err: errors.New("denied")})

	out := buf.String()
	assert.Contains(t, out, "*** ABORT ***")
	assert.Contains(t, out, "Software aborted with the following error:")
	assert.Contains(t, out, "error calling DescribeReservedInstances: denied")
}

func TestUserAtHost(t *testing.T) {
	assert.Contains(t, userAtHost(), "@")
}
