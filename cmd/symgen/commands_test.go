package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	defer logrus.SetLevel(logrus.GetLevel())
	defer logrus.SetOutput(logrus.StandardLogger().Out)
	logrus.SetOutput(&bytes.Buffer{})

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "symgen "+version+"\n", out)
}

func TestList_Plain(t *testing.T) {
	out, err := run(t, "list", "--rank", "2", "--dim", "3", "--plain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "0\tTensor2A01\t"))
	assert.True(t, strings.HasSuffix(lines[0], "\t3"))
	assert.True(t, strings.HasPrefix(lines[1], "1\tTensor2S01\t"))
	assert.True(t, strings.HasSuffix(lines[1], "\t6"))
	assert.True(t, strings.HasSuffix(lines[2], "\t9"))
}

func TestList_Table(t *testing.T) {
	out, err := run(t, "list", "--rank", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Type")
	assert.Contains(t, out, "Tensor3S012")
	assert.Contains(t, out, "9 configurations of rank 3")
}

func TestList_InvalidRank(t *testing.T) {
	_, err := run(t, "list", "--rank=-1")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "generate", "--out", dir, "--package", "gen", "--min-rank", "1", "--max-rank", "3")
	require.NoError(t, err)

	for _, name := range []string{"rank1.go", "rank2.go", "rank3.go"} {
		src, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, bytes.HasPrefix(src, []byte("// Code generated by symgen")), name)
		assert.Contains(t, string(src), "package gen", name)
	}
	_, err = os.Stat(filepath.Join(dir, "rank0.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_ConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	path := filepath.Join(dir, "symgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: fromfile\noutput_dir: "+out+"\nmin_rank: 2\nmax_rank: 2\n"), 0o644))

	_, err := run(t, "generate", "--config", path, "--package", "override")
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(out, "rank2.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package override")
}

func TestGenerate_InvalidConfig(t *testing.T) {
	_, err := run(t, "generate", "--out", t.TempDir(), "--min-rank", "3", "--max-rank", "1")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	out, err := run(t, "verify", "--max-rank", "3", "--dim", "2", "--workers", "2")
	require.NoError(t, err)
	// 1 + 1 + 3 + 9 configurations.
	assert.Equal(t, "verified 14 configurations up to rank 3 with D=2\n", out)
}

func TestRoot_BadLogLevel(t *testing.T) {
	_, err := run(t, "--log-level", "loud", "version")
	assert.Error(t, err)
}
