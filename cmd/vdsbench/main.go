// Command vdsbench runs the container workloads and reports their throughput.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/vds/configuration"
	"github.com/iotaledger/vds/logger"
	"github.com/iotaledger/vds/workload"
)

const (
	// CfgConfigFilePath is the name of the flag that points to the configuration file.
	CfgConfigFilePath = "config"
	// EnvironmentPrefix is the prefix of the environment variables that override configuration values.
	EnvironmentPrefix = "VDS"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vdsbench: %s\n", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	flagSet := configuration.NewUnsortedFlagSet("vdsbench", flag.ContinueOnError)
	configFilePath := flagSet.StringP(CfgConfigFilePath, "c", "config.json", "file path of the configuration file")

	config := configuration.New()

	parametersWorkload := workload.DefaultParameters()
	if err := config.BindParameters(flagSet, "workload", &parametersWorkload); err != nil {
		return err
	}

	parametersLogger := logger.DefaultCfg
	if err := config.BindParameters(flagSet, "logger", &parametersLogger); err != nil {
		return err
	}

	if err := flagSet.Parse(args); err != nil {
		if ierrors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	if err := loadConfiguration(config, flagSet, *configFilePath); err != nil {
		return err
	}

	log, err := logger.NewRootLogger(parametersLogger)
	if err != nil {
		return err
	}
	//nolint:errcheck // syncing stdout fails on some platforms
	defer log.Sync()

	if dump, err := config.Dump(); err == nil {
		log.Debugf("Parameters loaded:\n%s", dump)
	}

	runner, err := workload.NewRunner(parametersWorkload, log.Named("Workload"))
	if err != nil {
		return err
	}

	results, err := runner.Run(ctx)
	for _, result := range results {
		log.Infof("%s: %d operations in %s (%.0f ops/s), checksum %x", result.Kind, result.Operations, result.Elapsed, result.OperationsPerSecond(), result.Checksum)
	}

	return err
}

// loadConfiguration merges the configuration sources in the order file, flag defaults, environment and changed flags
// and writes the result into the bound parameters.
func loadConfiguration(config *configuration.Configuration, flagSet *flag.FlagSet, configFilePath string) error {
	if err := config.LoadFile(configFilePath); err != nil {
		// the default file is optional, an explicitly given one is not
		if configuration.HasFlag(flagSet, CfgConfigFilePath) || !ierrors.Is(err, os.ErrNotExist) {
			return ierrors.Wrap(err, "loading config file failed")
		}
	}

	// load the flags to set the default values
	if err := config.LoadFlagSet(flagSet); err != nil {
		return err
	}

	// load the env vars after default values from flags were set (otherwise the env vars are not added because the keys don't exist)
	if err := config.LoadEnvironmentVars(EnvironmentPrefix); err != nil {
		return err
	}

	// load the flags again to overwrite env vars that were also set via command line
	if err := config.LoadFlagSet(flagSet); err != nil {
		return err
	}

	config.UpdateBoundParameters()

	return nil
}
