package main

import (
	"fmt"
	"strings"

	"github.com/mangohow/strstack/cmd/strstack/internal/config"
	"github.com/mangohow/strstack/cmd/strstack/internal/democmd"
	"github.com/mangohow/strstack/cmd/strstack/internal/shellcmd"
	"github.com/mangohow/strstack/llog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	version   = "v0.1.0"
	envPrefix = "STRSTACK"
)

// newRootCmd 返回根命令和 flush 函数, flush 需要在 Execute 之后调用, 出错时也一样
func newRootCmd() (*cobra.Command, func()) {
	opts := &config.Options{}
	var flush func()

	cmd := &cobra.Command{
		Use:           "strstack",
		Short:         "strstack is a bounded, auto-growing string stack",
		Long:          "strstack runs a push/pop demo or an interactive shell over a string stack with a capacity ceiling and an element size ceiling",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEnv(cmd.Flags()); err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			_, f, err := llog.InitLogger(
				llog.WithLevel(opts.LogLevel),
				llog.WithEncoding(opts.LogEncoding),
				llog.WithFilename(opts.LogFile),
				llog.WithOutput(cmd.ErrOrStderr()),
				llog.WithServiceName("strstack"),
			)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			flush = f

			llog.GetLogger().Debugw("config loaded",
				"command", cmd.Name(),
				"initialCapacity", opts.InitialCapacity,
				"maxCapacity", opts.MaxCapacity,
				"maxElementBytes", opts.MaxElementBytes,
			)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return democmd.RunE(cmd, opts)
		},
	}

	opts.AddFlags(cmd.PersistentFlags())
	cmd.AddCommand(democmd.NewCmdDemo(opts))
	cmd.AddCommand(shellcmd.NewCmdShell(opts))

	return cmd, func() {
		if flush != nil {
			flush()
		}
	}
}

// applyEnv 用 STRSTACK_* 环境变量填充未在命令行显式设置的参数
func applyEnv(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		val := v.GetString(f.Name)
		if val == "" || val == f.Value.String() {
			return
		}
		if setErr := f.Value.Set(val); setErr != nil {
			err = fmt.Errorf("invalid %s_%s: %w", envPrefix, strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_")), setErr)
		}
	})
	return err
}
