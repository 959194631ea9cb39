package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wkalt/grouper/cli/util"
	"github.com/wkalt/grouper/util/log"
)

var (
	globs      []string
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "grouper",
	Short: "Group words, characters and trigrams from text",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, err := loadConfig(cmd, configPath)
		if err != nil {
			return err
		}
		log.Configure(os.Stderr, verbose)
		if file != "" {
			log.Debugw(cmd.Context(), "loaded config", "file", file)
		}
		if util.StdoutRedirected() {
			color.NoColor = true
		}
		return nil
	},
}

func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

func bailf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func checkErr(err error) {
	if err != nil {
		bailf("error: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&globs, "glob", "g", nil, "read files matching these patterns (** matches directories)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "", "directory containing grouper.yaml")
}
