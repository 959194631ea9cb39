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

var (
	wordsOpts groupOptions
	wordsBy   string
)

// wordsCmd groups words by a derived key.
var wordsCmd = &cobra.Command{
	Use:   "words [file...]",
	Short: "Group the words of files or stdin",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.AddTags(cmd.Context(), "command", "words", "by", wordsBy)
		keyFn, err := tokens.KeyFunc(wordsBy)
		checkErr(err)
		opts, err := wordsOpts.groupingOptions()
		checkErr(err)
		g, err := groupWords(ctx, args, keyFn, opts...)
		checkErr(err)
		log.Debugf(ctx, "grouped words into %d groups", g.Len())
		checkErr(render(ctx, os.Stdout, g, wordsOpts))
	},
}

// groupWords groups the words of every input by keyFn, one input per worker.
func groupWords(
	ctx context.Context,
	args []string,
	keyFn func(string) (string, error),
	opts ...grouping.Option,
) (*grouping.Grouping[string, string, string], error) {
	readers, closeAll, err := readInput(ctx, args)
	if err != nil {
		return nil, err
	}
	defer closeAll()
	g, err := grouping.ByKey([]string{}, keyFn, opts...)
	if err != nil {
		return nil, err
	}
	dst := grouping.NewSynchronized(g)
	err = groupInputs(ctx, readers, func(r io.Reader) (*grouping.Grouping[string, string, string], error) {
		words, err := tokens.Words(r)
		if err != nil {
			return nil, err
		}
		return grouping.ByKey(words, keyFn, opts...)
	}, dst)
	if err != nil {
		return nil, err
	}
	return dst.Snapshot(), nil
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsOpts.register(wordsCmd)
	wordsCmd.Flags().StringVarP(&wordsBy, "by", "b", "fold", "key function: fold, initial, length or identity")
}
