package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wkalt/grouper/grouping"
	"github.com/wkalt/grouper/tokens"
	"github.com/wkalt/grouper/util/log"
)

var (
	charsOpts  groupOptions
	charsBy    string
	charsSpace bool
)

// charsCmd groups the characters of its arguments, or of the input when
// there are none.
var charsCmd = &cobra.Command{
	Use:   "chars [text...]",
	Short: "Group characters, by default case-insensitively",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := log.AddTags(cmd.Context(), "command", "chars", "by", charsBy)
		text := strings.Join(args, " ")
		if len(args) == 0 {
			readers, closeAll, err := readInput(ctx, nil)
			checkErr(err)
			data, err := io.ReadAll(io.MultiReader(readers...))
			closeAll()
			checkErr(err)
			text = string(data)
		}
		chars := tokens.Characters(text)
		if !charsSpace {
			chars = dropSpace(chars)
		}
		keyFn, err := tokens.KeyFunc(charsBy)
		checkErr(err)
		opts, err := charsOpts.groupingOptions()
		checkErr(err)
		g, err := grouping.ByKey(chars, keyFn, opts...)
		checkErr(err)
		log.Debugw(ctx, "grouped characters", "characters", len(chars), "groups", g.Len())
		checkErr(render(ctx, os.Stdout, g, charsOpts))
	},
}

func dropSpace(chars []string) []string {
	kept := make([]string, 0, len(chars))
	for _, c := range chars {
		if strings.TrimSpace(c) != "" {
			kept = append(kept, c)
		}
	}
	return kept
}

func init() {
	rootCmd.AddCommand(charsCmd)
	charsOpts.register(charsCmd)
	charsCmd.Flags().StringVarP(&charsBy, "by", "b", "fold", "key function: fold or identity")
	charsCmd.Flags().BoolVarP(&charsSpace, "keep-space", "", false, "group whitespace characters too")
}
