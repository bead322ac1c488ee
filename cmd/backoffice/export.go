package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/talkincode/backoffice/internal/app"
	"github.com/talkincode/backoffice/internal/catalog"
	"github.com/talkincode/backoffice/pkg/tableview"
)

type exportOptions struct {
	all     bool
	format  string
	dir     string
	sort    string
	order   string
	filter  string
	workers int
}

type exportResult struct {
	Plural string
	Path   string
	Rows   int
	Err    error
}

func newExportCmd() *cobra.Command {
	opts := exportOptions{}
	cmd := &cobra.Command{
		Use:   "export [resource]",
		Short: "Export one resource, or every resource with --all, to csv/xlsx files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.all && len(args) == 0 {
				return errors.New("name a resource or pass --all")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			application := app.NewApplication(cfg)
			if err := application.Init(cfg); err != nil {
				return err
			}
			defer application.Release()

			descs := application.Catalog().All()
			if !opts.all {
				d, ok := application.Catalog().Lookup(args[0])
				if !ok {
					return errors.Errorf("unknown resource %q", args[0])
				}
				descs = []catalog.Descriptor{d}
			}
			if opts.dir == "" {
				opts.dir = cfg.GetExportDir()
			}

			results, err := exportResources(cmd.Context(), descs, opts)
			if err != nil {
				return err
			}
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", r.Plural, r.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows -> %s\n", r.Plural, r.Rows, r.Path)
			}
			if failed > 0 {
				return errors.Errorf("%d of %d exports failed", failed, len(results))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&opts.all, "all", false, "export every resource")
	f.StringVarP(&opts.format, "format", "f", "csv", "csv or xlsx")
	f.StringVarP(&opts.dir, "dir", "d", "", "output directory (default <workdir>/export)")
	f.StringVar(&opts.sort, "sort", "", "sort column")
	f.StringVar(&opts.order, "order", "", "asc or desc")
	f.StringVarP(&opts.filter, "query", "q", "", "filter on the display field")
	f.IntVarP(&opts.workers, "workers", "w", 4, "concurrent exports")
	return cmd
}

// exportResources writes one file per descriptor on a bounded worker pool.
// Per-resource failures are reported in the results, not as the returned error.
func exportResources(ctx context.Context, descs []catalog.Descriptor, opts exportOptions) ([]exportResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	format, err := catalog.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create export dir")
	}
	workers := opts.workers
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrap(err, "create worker pool")
	}
	defer pool.Release()

	q := tableview.Query{OrderBy: opts.sort, Filter: opts.filter}
	if opts.order != "" {
		q.Order = tableview.ParseOrder(opts.order)
	}

	results := make([]exportResult, len(descs))
	var wg sync.WaitGroup
	for i, d := range descs {
		i, d := i, d
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = exportOne(ctx, d, format, opts.dir, q)
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			results[i] = exportResult{Plural: d.Meta().Plural, Err: err}
		}
	}
	wg.Wait()
	return results, nil
}

func exportOne(ctx context.Context, d catalog.Descriptor, format catalog.Format, dir string, q tableview.Query) exportResult {
	meta := d.Meta()
	res := exportResult{Plural: meta.Plural, Path: filepath.Join(dir, meta.Plural+format.Ext())}
	start := time.Now()

	f, err := os.Create(res.Path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Rows, res.Err = d.Export(ctx, f, format, q)
	if cerr := f.Close(); res.Err == nil {
		res.Err = cerr
	}
	if res.Err != nil {
		_ = os.Remove(res.Path)
		zap.L().Warn("export failed", zap.String("namespace", "export"), zap.String("resource", meta.Plural), zap.Error(res.Err))
		return res
	}
	zap.L().Info("export done",
		zap.String("namespace", "export"),
		zap.String("resource", meta.Plural),
		zap.Int("rows", res.Rows),
		zap.Duration("elapsed", time.Since(start)))
	return res
}
