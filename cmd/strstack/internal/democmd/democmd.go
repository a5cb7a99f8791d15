package democmd

import (
	"context"
	"fmt"
	"io"

	"github.com/mangohow/strstack/cmd/strstack/internal/config"
	"github.com/mangohow/strstack/llog"
	"github.com/mangohow/strstack/tools/collection"
	"github.com/spf13/cobra"
)

var demoValues = []string{"Hello", "World", "OpenAI"}

// pops 比 push 多一次, 最后一次一定失败
const pops = 4

func NewCmdDemo(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Push three strings and pop four times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunE(cmd, opts)
		},
	}
}

// RunE 运行演示, 根命令没有子命令时也调用它
func RunE(cmd *cobra.Command, opts *config.Options) error {
	ctx, _ := llog.WithRunID(cmd.Context(), "")
	return Run(ctx, opts.NewStack(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Run 向 s 压入三个字符串后弹出四次, 第一个错误写到 stderr 后正常返回
func Run(ctx context.Context, s collection.Stack, stdout, stderr io.Writer) error {
	logger := llog.FromContext(ctx)

	for _, v := range demoValues {
		if err := s.Push(v); err != nil {
			fmt.Fprintf(stderr, "Exception occurred: %v\n", err)
			return nil
		}
		logger.Debugw("pushed", "value", v, "size", s.Size())
	}

	for i := 0; i < pops; i++ {
		v, err := s.Pop()
		if err != nil {
			logger.Infow("pop failed", "error", err)
			fmt.Fprintf(stderr, "Exception occurred: %v\n", err)
			return nil
		}
		fmt.Fprintf(stdout, "Popped string: %s\n", v)
	}

	return nil
}
