package cmd

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wkalt/grouper/grouping"
	"github.com/wkalt/grouper/tokens"
	"github.com/wkalt/grouper/util/log"
)

var trigramsOpts groupOptions

// trigramsCmd collects, for every pair of consecutive words, the words that
// follow it. Trigrams never span two input files.
var trigramsCmd = &cobra.Command{
	Use:   "trigrams [file...]",
	Short: "Group the followers of each word pair",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.AddTags(cmd.Context(), "command", "trigrams")
		opts, err := trigramsOpts.groupingOptions()
		checkErr(err)
		g, err := groupTrigrams(ctx, args, opts...)
		checkErr(err)
		log.Debugf(ctx, "collected %d word pairs", g.Len())
		checkErr(render(ctx, os.Stdout, g, trigramsOpts))
	},
}

// groupTrigrams collects the trigrams of every input, one input per worker.
func groupTrigrams(
	ctx context.Context,
	args []string,
	opts ...grouping.Option,
) (*grouping.Grouping[tokens.Trigram, tokens.Bigram, string], error) {
	readers, closeAll, err := readInput(ctx, args)
	if err != nil {
		return nil, err
	}
	defer closeAll()
	g, err := grouping.New[tokens.Trigram, tokens.Bigram, string](nil, nil, opts...)
	if err != nil {
		return nil, err
	}
	dst := grouping.NewSynchronized(g)
	err = groupInputs(ctx, readers, func(r io.Reader) (*grouping.Grouping[tokens.Trigram, tokens.Bigram, string], error) {
		words, err := tokens.Words(r)
		if err != nil {
			return nil, err
		}
		return tokens.BuildTrigrams(words, opts...)
	}, dst)
	if err != nil {
		return nil, err
	}
	return dst.Snapshot(), nil
}

func init() {
	rootCmd.AddCommand(trigramsCmd)
	trigramsOpts.register(trigramsCmd)
}
