package client

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func AddWorkbenchApiConnectionCommandlineArgs(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	flags.String("workbenchUrl", "", "workbench API host, e.g. https://ml.example.com")
	flags.String("apiKey", "", "workbench API key")
	flags.String("projectId", "", "identifier of the project to create jobs in")
	flags.Duration("requestTimeout", DefaultRequestTimeout, "timeout for a single API call")
	flags.String("runtimeId", "", "default runtime image identifier for jobs that declare none")
	flags.Float64("defaultCpu", 1, "default cpu vcores per job")
	flags.Float64("defaultMemory", 1, "default memory (GB) per job")
	flags.Int64("defaultTimeout", 3600, "default job timeout in seconds")
	flags.String("templateDir", "template", "base directory jobs scripts are resolved against")
	bindFlags(flags,
		"workbenchUrl", "apiKey", "projectId", "requestTimeout",
		"runtimeId", "defaultCpu", "defaultMemory", "defaultTimeout", "templateDir")
}

func bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

func LoadCommandlineArgsFromConfigFile(cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("error getting user home directory: %s", err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".jobctl")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			// Users don't have to have a .jobctl file, so do nothing
		default:
			return fmt.Errorf("error reading config file %s: %s", viper.ConfigFileUsed(), err)
		}
	}
	return nil
}

func ExtractCommandlineWorkbenchApiConnectionDetails() *ApiConnectionDetails {
	details := &ApiConnectionDetails{}
	viper.Unmarshal(details, viper.DecodeHook(mapstructure.StringToTimeDurationHookFunc()))
	return details
}

func ExtractCommandlineSubmitDefaults() *SubmitDefaults {
	defaults := &SubmitDefaults{}
	viper.Unmarshal(defaults)
	return defaults
}
