// Package codegen renders symmetry configurations into Go source: one file
// per rank holding one generic compact-storage type per configuration.
//
// Types are rendered concurrently but always materialized in enumeration
// order, so the output for a given rank is byte-for-byte stable.
package codegen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/symtensor/internal/expr"
	"github.com/born-ml/symtensor/internal/symmetry"
)

// DefaultImport is the runtime package referenced by generated code.
const DefaultImport = "github.com/born-ml/symtensor/symmetry"

// ErrInvalidOptions is returned for unusable generator options.
var ErrInvalidOptions = errors.New("codegen: invalid options")

// Options configures a Generator.
type Options struct {
	// Package is the package clause of generated files.
	Package string
	// Import is the path of the runtime package. Its package name must be symmetry.
	Import string
	// Workers bounds the number of types rendered concurrently. 0 means unbounded.
	Workers int
}

// File is one generated source file.
type File struct {
	Name   string // File name, e.g. "rank2.go".
	Rank   int
	Types  int // Number of generated types.
	Source []byte
}

// Generator renders configurations into Go source.
type Generator struct {
	opts Options
	log  logrus.FieldLogger
}

// New creates a generator. A nil logger discards log output.
func New(opts Options, log logrus.FieldLogger) (*Generator, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("%w: empty package name", ErrInvalidOptions)
	}
	if opts.Import == "" {
		opts.Import = DefaultImport
	}
	if opts.Workers < 0 {
		return nil, fmt.Errorf("%w: workers %d", ErrInvalidOptions, opts.Workers)
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Generator{opts: opts, log: log}, nil
}

// Rank renders every configuration of the given rank into one file.
func (g *Generator) Rank(ctx context.Context, rank int) (File, error) {
	configs, err := symmetry.Enumerate(rank)
	if err != nil {
		return File{}, err
	}
	log := g.log.WithFields(logrus.Fields{"rank": rank, "configurations": len(configs)})
	log.Debug("rendering rank")

	parts := make([][]byte, len(configs))
	eg, ctx := errgroup.WithContext(ctx)
	if g.opts.Workers > 0 {
		eg.SetLimit(g.opts.Workers)
	}
	for i, c := range configs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := renderType(c)
			if err != nil {
				return fmt.Errorf("render %s: %w", c, err)
			}
			parts[i] = src
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return File{}, err
	}

	var buf bytes.Buffer
	data := struct {
		Package string
		Import  string
		Types   []string
	}{Package: g.opts.Package, Import: g.opts.Import}
	for _, p := range parts {
		data.Types = append(data.Types, string(p))
	}
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return File{}, fmt.Errorf("render rank %d: %w", rank, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return File{}, fmt.Errorf("format rank %d: %w", rank, err)
	}

	log.WithField("bytes", len(src)).Info("rendered rank")
	return File{Name: FileName(rank), Rank: rank, Types: len(configs), Source: src}, nil
}

// Ranks renders the files for every rank in [minRank, maxRank], in order.
func (g *Generator) Ranks(ctx context.Context, minRank, maxRank int) ([]File, error) {
	if minRank < 0 || maxRank < minRank {
		return nil, fmt.Errorf("%w: rank range [%d, %d]", ErrInvalidOptions, minRank, maxRank)
	}
	files := make([]File, 0, maxRank-minRank+1)
	for r := minRank; r <= maxRank; r++ {
		f, err := g.Rank(ctx, r)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// FileName returns the name of the generated file for a rank.
func FileName(rank int) string {
	return "rank" + strconv.Itoa(rank) + ".go"
}

// TypeName returns the generated type name of a configuration, e.g.
// "Tensor3A01F2" for an antisymmetric pair {0,1} and a free axis 2.
func TypeName(c symmetry.Configuration) string {
	return "Tensor" + strconv.Itoa(c.Rank()) + strings.ReplaceAll(c.Name(), "_", "")
}

// Summary describes a configuration in words for generated doc comments.
func Summary(c symmetry.Configuration) string {
	d := c.Describe()
	var parts []string
	for _, b := range d.Blocks {
		parts = append(parts, fmt.Sprintf("%s indices %s", b.Kind, positions(b.Positions)))
	}
	switch len(d.FreeAxes) {
	case 0:
	case 1:
		parts = append(parts, "free index "+strconv.Itoa(d.FreeAxes[0]))
	default:
		parts = append(parts, "free indices "+positions(d.FreeAxes))
	}
	if len(parts) == 0 {
		return "no indices"
	}
	return strings.Join(parts, ", ")
}

func positions(ps []int) string {
	s := make([]string, len(ps))
	for i, p := range ps {
		s[i] = strconv.Itoa(p)
	}
	return "{" + strings.Join(s, ",") + "}"
}

// goStyle renders expressions as Go source inside a generated Offset function.
var goStyle = expr.Style{
	Symbol: func(string) string { return "dim" },
	Axis: func(a expr.Axis) string {
		if a.Bound {
			return fmt.Sprintf("b%d[%d]", a.Group, a.Order)
		}
		return "i" + strconv.Itoa(a.Position)
	},
	Binomial: "symmetry.Choose",
}

type stepData struct {
	Group  int
	Var    string
	Size   int
	Values string
	Anti   bool
}

type typeData struct {
	Type    string
	Rank    int
	Summary string
	SizeDoc string
	Size    string
	Params  string
	Args    string
	Odd     bool
	Steps   []stepData
	Index   string
}

func renderType(c symmetry.Configuration) ([]byte, error) {
	program := symmetry.RankExpression(c)
	size := symmetry.SizeExpression(c)

	args := make([]string, c.Rank())
	for i := range args {
		args[i] = "i" + strconv.Itoa(i)
	}
	d := typeData{
		Type:    TypeName(c),
		Rank:    c.Rank(),
		Summary: Summary(c),
		SizeDoc: size.String(),
		Size:    expr.Format(size, goStyle),
		Args:    strings.Join(args, ", "),
		Index:   expr.Format(program.Index, goStyle),
	}
	if len(args) > 0 {
		d.Params = d.Args + " int"
	}
	for _, step := range program.Steps {
		values := make([]string, len(step.Positions))
		for j, p := range step.Positions {
			values[j] = "i" + strconv.Itoa(p)
		}
		anti := step.Kind == symmetry.Antisymmetric
		d.Odd = d.Odd || anti
		d.Steps = append(d.Steps, stepData{
			Group:  step.Group,
			Var:    "b" + strconv.Itoa(step.Group),
			Size:   len(step.Positions),
			Values: strings.Join(values, ", "),
			Anti:   anti,
		})
	}

	var buf bytes.Buffer
	if err := typeTemplate.Execute(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
