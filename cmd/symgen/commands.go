package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/born-ml/symtensor/internal/codegen"
	"github.com/born-ml/symtensor/internal/parallel"
	"github.com/born-ml/symtensor/internal/symmetry"
	"github.com/born-ml/symtensor/internal/verify"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "symgen",
		Short: "Generate compact storage types for tensors with index symmetries",
		Long: `symgen enumerates every partition of a tensor's index positions into
symmetric and antisymmetric blocks and renders one Go storage type per
configuration, storing only the independent components.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newGenerateCmd(), newListCmd(), newVerifyCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "symgen %s\n", version)
		},
	}
}

func newGenerateCmd() *cobra.Command {
	var configPath string
	flags := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render one Go file per rank into the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg, flags)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cfg, logrus.StandardLogger())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	f.StringVar(&flags.Package, "package", flags.Package, "package name of generated files")
	f.StringVarP(&flags.OutputDir, "out", "o", flags.OutputDir, "output directory")
	f.StringVar(&flags.Import, "import", flags.Import, "import path of the symmetry runtime package")
	f.IntVar(&flags.MinRank, "min-rank", flags.MinRank, "lowest rank to generate")
	f.IntVar(&flags.MaxRank, "max-rank", flags.MaxRank, "highest rank to generate")
	f.IntVar(&flags.Workers, "workers", flags.Workers, "types rendered concurrently (0 = unbounded)")
	return cmd
}

// applyFlags copies explicitly set flags over the file configuration.
func applyFlags(cmd *cobra.Command, cfg *Config, flags Config) {
	changed := cmd.Flags().Changed
	if changed("package") {
		cfg.Package = flags.Package
	}
	if changed("out") {
		cfg.OutputDir = flags.OutputDir
	}
	if changed("import") {
		cfg.Import = flags.Import
	}
	if changed("min-rank") {
		cfg.MinRank = flags.MinRank
	}
	if changed("max-rank") {
		cfg.MaxRank = flags.MaxRank
	}
	if changed("workers") {
		cfg.Workers = flags.Workers
	}
}

func runGenerate(ctx context.Context, cfg Config, log logrus.FieldLogger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	gen, err := codegen.New(codegen.Options{Package: cfg.Package, Import: cfg.Import, Workers: cfg.Workers}, log)
	if err != nil {
		return err
	}
	files, err := gen.Ranks(ctx, cfg.MinRank, cfg.MaxRank)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	for _, f := range files {
		path := filepath.Join(cfg.OutputDir, f.Name)
		if err := os.WriteFile(path, f.Source, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.WithFields(logrus.Fields{"file": path, "types": f.Types}).Info("wrote file")
	}
	return nil
}

func newListCmd() *cobra.Command {
	var (
		rank  int
		dim   int
		plain bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configurations of a rank with their storage sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := symmetry.Enumerate(rank)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(configs))
			for i, c := range configs {
				row := []string{strconv.Itoa(i), codegen.TypeName(c), c.String(), symmetry.SizeExpression(c).String()}
				if dim > 0 {
					size, err := symmetry.TotalSize(c, dim)
					if err != nil {
						return err
					}
					row = append(row, strconv.Itoa(size))
				}
				rows = append(rows, row)
			}

			out := cmd.OutOrStdout()
			if plain {
				for _, row := range rows {
					for j, cell := range row {
						if j > 0 {
							fmt.Fprint(out, "\t")
						}
						fmt.Fprint(out, cell)
					}
					fmt.Fprintln(out)
				}
				return nil
			}

			header := []string{"#", "Type", "Groups", "Size"}
			if dim > 0 {
				header = append(header, "D="+strconv.Itoa(dim))
			}
			table := tablewriter.NewWriter(out)
			table.SetHeader(header)
			table.SetCaption(true, fmt.Sprintf("%d configurations of rank %d", len(configs), rank))
			table.SetBorder(false)
			table.SetAutoFormatHeaders(false)
			table.AppendBulk(rows)
			table.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&rank, "rank", "r", 2, "tensor rank")
	cmd.Flags().IntVarP(&dim, "dim", "d", 0, "dimension for concrete sizes (0 = symbolic only)")
	cmd.Flags().BoolVar(&plain, "plain", false, "tab-separated output without table")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var (
		maxRank int
		dim     int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Exhaustively check every layout up to a rank",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			opts := verify.DefaultOptions()
			if workers > 0 {
				opts.Parallel = parallel.Config{Enabled: workers > 1, NumWorkers: workers, MinChunkSize: opts.Parallel.MinChunkSize}
			}

			total := 0
			for r := 0; r <= maxRank; r++ {
				reports, err := verify.Rank(ctx, r, dim, opts)
				if err != nil {
					return err
				}
				logrus.WithFields(logrus.Fields{"rank": r, "dim": dim, "configurations": len(reports)}).Info("verified rank")
				total += len(reports)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "verified %d configurations up to rank %d with D=%d\n", total, maxRank, dim)
			return nil
		},
	}
	cmd.Flags().IntVarP(&maxRank, "max-rank", "r", 4, "highest rank to verify")
	cmd.Flags().IntVarP(&dim, "dim", "d", 3, "dimension")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = number of CPUs)")
	return cmd
}
