package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

/*
Flag defaults may come from a grouper.yaml file or from GROUPER_* environment
variables. Persistent flags use their own name as the key; command flags are
nested under the command name:

	glob: ["notes/*.txt"]
	words:
	  kind: set
	  top: 10

Flags given on the command line always win.
*/

////////////////////////////////////////////////////////////////////////////////

const envPrefix = "GROUPER"

// loadConfig fills unset flags of cmd from the config file and environment.
// It returns the config file used, if any.
func loadConfig(cmd *cobra.Command, dir string) (string, error) {
	v := viper.New()
	v.SetConfigName("grouper")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	} else {
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return "", fmt.Errorf("failed to read config: %w", err)
		}
	}
	if err := bindFlags(v, cmd.Root().PersistentFlags(), ""); err != nil {
		return "", err
	}
	if err := bindFlags(v, cmd.Flags(), cmd.Name()+"."); err != nil {
		return "", err
	}
	return v.ConfigFileUsed(), nil
}

// bindFlags sets every flag not given on the command line from v.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, prefix string) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || f.Name == "help" {
			return
		}
		key := prefix + f.Name
		if !v.IsSet(key) {
			return
		}
		switch x := v.Get(key).(type) {
		case []any:
			sliceValue, ok := f.Value.(pflag.SliceValue)
			if !ok {
				err = fmt.Errorf("%s: expected a single value", key)
				return
			}
			values := make([]string, len(x))
			for i, y := range x {
				values[i] = fmt.Sprint(y)
			}
			err = sliceValue.Replace(values)
		default:
			err = f.Value.Set(fmt.Sprint(x))
		}
		if err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
	})
	return err
}
