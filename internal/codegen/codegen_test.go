package codegen

import (
	"context"
	"flag"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/symtensor/internal/symmetry"
)

var update = flag.Bool("update", false, "rewrite the checked-in files under golden/")

func newGenerator(t *testing.T, workers int) *Generator {
	t.Helper()
	g, err := New(Options{Package: "tensors", Workers: workers}, nil)
	require.NoError(t, err)
	return g
}

// parseFile parses generated source and returns its declared type and function names.
func parseFile(t *testing.T, src []byte) (types, funcs []string) {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source:\n%s", src)
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					types = append(types, ts.Name.Name)
				}
			}
		case *ast.FuncDecl:
			if d.Recv == nil {
				funcs = append(funcs, d.Name.Name)
			}
		}
	}
	return types, funcs
}

func TestGenerator_Rank2(t *testing.T) {
	f, err := newGenerator(t, 2).Rank(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "rank2.go", f.Name)
	assert.Equal(t, 3, f.Types)

	src := string(f.Source)
	assert.True(t, strings.HasPrefix(src, "// Code generated by symgen. DO NOT EDIT.\n\npackage tensors\n"))
	assert.Contains(t, src, `import "github.com/born-ml/symtensor/symmetry"`)

	types, funcs := parseFile(t, f.Source)
	assert.Equal(t, []string{"Tensor2A01", "Tensor2S01", "Tensor2F0F1"}, types)
	assert.Contains(t, funcs, "NewTensor2A01")
	assert.Contains(t, funcs, "Tensor2S01Size")
	assert.Contains(t, funcs, "Tensor2F0F1Offset")

	assert.Contains(t, src, "func Tensor2A01Offset(dim int, i0, i1 int) int {")
	assert.Contains(t, src, "b0 := [2]int{i0, i1}")
	assert.Contains(t, src, "symmetry.Canonicalize(b0[:], symmetry.Antisymmetric)")
	assert.Contains(t, src, "symmetry.Canonicalize(b0[:], symmetry.Symmetric)")
	assert.Contains(t, src, "return symmetry.ErrZeroSlot")
	assert.Contains(t, src, "// Tensor2A01 stores a rank-2 tensor with antisymmetric indices {0,1}.")
	assert.Contains(t, src, "// Tensor2F0F1 stores a rank-2 tensor with free indices {0,1}.")
}

func TestGenerator_Rank0(t *testing.T) {
	f, err := newGenerator(t, 0).Rank(context.Background(), 0)
	require.NoError(t, err)

	types, _ := parseFile(t, f.Source)
	assert.Equal(t, []string{"Tensor0"}, types)
	assert.Contains(t, string(f.Source), "func (t *Tensor0[T]) At() (T, error) {")
	assert.Contains(t, string(f.Source), "func (t *Tensor0[T]) Set(v T) error {")
}

func TestGenerator_Deterministic(t *testing.T) {
	seq, err := newGenerator(t, 1).Rank(context.Background(), 4)
	require.NoError(t, err)
	par, err := newGenerator(t, 0).Rank(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, seq.Source, par.Source)

	n, err := symmetry.Count(4)
	require.NoError(t, err)
	types, _ := parseFile(t, par.Source)
	assert.Len(t, types, n)

	configs, err := symmetry.Enumerate(4)
	require.NoError(t, err)
	for i, c := range configs {
		assert.Equal(t, TypeName(c), types[i], "types follow enumeration order")
	}
}

// TestGenerator_Golden compares a fresh run against the checked-in package
// under golden/, whose tests compile and exercise the generated code.
func TestGenerator_Golden(t *testing.T) {
	g, err := New(Options{Package: "golden"}, nil)
	require.NoError(t, err)
	files, err := g.Ranks(context.Background(), 0, 4)
	require.NoError(t, err)

	for _, f := range files {
		path := filepath.Join("golden", f.Name)
		if *update {
			require.NoError(t, os.WriteFile(path, f.Source, 0o644))
			continue
		}
		want, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(f.Source), "%s is stale; run go generate ./internal/codegen/golden", path)
	}
}

func TestGenerator_Ranks(t *testing.T) {
	files, err := newGenerator(t, 4).Ranks(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Len(t, files, 3)
	for i, f := range files {
		assert.Equal(t, i+1, f.Rank)
		parseFile(t, f.Source)
	}

	_, err = newGenerator(t, 4).Ranks(context.Background(), 3, 1)
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestGenerator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newGenerator(t, 1).Rank(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerator_Logging(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	g, err := New(Options{Package: "tensors"}, logger)
	require.NoError(t, err)

	_, err = g.Rank(context.Background(), 2)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "rendered rank", entry.Message)
	assert.Equal(t, 2, entry.Data["rank"])
	assert.Equal(t, 3, entry.Data["configurations"])
	assert.Len(t, hook.AllEntries(), 2)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(Options{}, nil)
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = New(Options{Package: "x", Workers: -1}, nil)
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = newGenerator(t, 0).Rank(context.Background(), -1)
	assert.ErrorIs(t, err, symmetry.ErrInvalidRank)
}

func TestNaming(t *testing.T) {
	c, err := symmetry.NewConfiguration(4,
		symmetry.Group{Positions: []int{0, 2}, Kind: symmetry.Symmetric},
		symmetry.Group{Positions: []int{1}},
		symmetry.Group{Positions: []int{3}},
	)
	require.NoError(t, err)

	assert.Equal(t, "Tensor4S02F1F3", TypeName(c))
	assert.Equal(t, "symmetric indices {0,2}, free indices {1,3}", Summary(c))
	assert.Equal(t, "rank4.go", FileName(4))

	scalar, err := symmetry.NewConfiguration(0)
	require.NoError(t, err)
	assert.Equal(t, "no indices", Summary(scalar))
}
