package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/wkalt/grouper/cli/util"
	"github.com/wkalt/grouper/grouping"
	grouperutil "github.com/wkalt/grouper/util"
	"github.com/wkalt/grouper/util/log"
)

// groupOptions are the flags shared by every grouping command.
type groupOptions struct {
	kind    string
	top     int
	json    bool
	maxVals int
}

func (o *groupOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.kind, "kind", "k", "list", "bucket kind: list, set or counting")
	cmd.Flags().IntVarP(&o.top, "top", "n", 0, "show only the n largest groups (0 shows all)")
	cmd.Flags().BoolVarP(&o.json, "json", "", false, "write JSON instead of a table")
	cmd.Flags().IntVarP(&o.maxVals, "max-values", "", 12, "values shown per group in tables (0 shows all)")
}

func (o *groupOptions) groupingOptions() ([]grouping.Option, error) {
	kind, err := grouping.ParseKind(o.kind)
	if err != nil {
		return nil, err
	}
	return []grouping.Option{grouping.WithKind(kind)}, nil
}

var summaryColor = color.New(color.FgHiGreen)

type rankedGroup[K, V comparable] struct {
	Key    K   `json:"key"`
	Size   int `json:"size"`
	Values []V `json:"values"`
}

// render writes the ranked groups of g to w.
func render[T any, K, V comparable](
	ctx context.Context,
	w io.Writer,
	g *grouping.Grouping[T, K, V],
	opts groupOptions,
) error {
	var ranked []rankedGroup[K, V]
	var items []grouperutil.Pair[K, grouping.Bucket[V]]
	if opts.top != 0 {
		top, err := g.MostCommonN(opts.top)
		if err != nil {
			return err
		}
		items = top
	} else {
		items = g.MostCommon()
	}
	for _, item := range items {
		ranked = append(ranked, rankedGroup[K, V]{
			Key:    item.First,
			Size:   item.Second.Len(),
			Values: item.Second.Values(),
		})
	}
	log.Debugw(ctx, "ranked groups", "groups", g.Len(), "shown", len(ranked), "kind", g.Kind())

	if opts.json {
		if opts.top != 0 {
			return json.NewEncoder(w).Encode(ranked)
		}
		return json.NewEncoder(w).Encode(g)
	}

	data := make([][]string, 0, len(ranked))
	for _, r := range ranked {
		data = append(data, []string{
			fmt.Sprintf("%v", r.Key),
			strconv.Itoa(r.Size),
			formatValues(r.Values, opts.maxVals),
		})
	}
	util.PrintTable(w, util.TermWidth(), []string{"Key", "Size", "Values"}, data)
	_, err := summaryColor.Fprintf(w, "%d groups, %d shown (%s buckets)\n", g.Len(), len(ranked), g.Kind())
	return err
}

func formatValues[V any](values []V, limit int) string {
	parts := make([]string, 0, len(values))
	for i, v := range values {
		if limit > 0 && i == limit {
			parts = append(parts, fmt.Sprintf("... (%d more)", len(values)-limit))
			break
		}
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	return strings.Join(parts, " ")
}

// readInput returns the contents of the named files and of the files
// matching the --glob patterns, or stdin if there are none.
func readInput(ctx context.Context, args []string) ([]io.Reader, func(), error) {
	files := append([]string{}, args...)
	if len(globs) > 0 {
		matched, err := util.ExpandGlobs(globs)
		if err != nil {
			return nil, nil, err
		}
		files = append(files, matched...)
	}
	if len(files) == 0 {
		if util.StdinTerminal() {
			log.Infof(ctx, "reading stdin until end of input")
		}
		log.Debugf(ctx, "reading stdin")
		return []io.Reader{os.Stdin}, func() {}, nil
	}
	readers := make([]io.Reader, 0, len(files))
	closers := make([]io.Closer, 0, len(files))
	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to open input: %w", err)
		}
		log.Debugw(ctx, "reading file", "file", name)
		readers = append(readers, f)
		closers = append(closers, f)
	}
	return readers, closeAll, nil
}
