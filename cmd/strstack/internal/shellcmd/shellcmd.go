package shellcmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mangohow/strstack/cmd/strstack/internal/config"
	"github.com/mangohow/strstack/llog"
	"github.com/mangohow/strstack/tools/collection"
	"github.com/spf13/cobra"
)

const helpText = `commands:
  push <value>  push value (rest of the line) onto the stack
  pop           pop and print the top value
  size          print size/capacity
  help          show this help
  quit, exit    end the session`

func NewCmdShell(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Read push/pop commands from stdin, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, _ := llog.WithRunID(cmd.Context(), "")
			return NewSession(opts.NewStack()).Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// Session 在单个 goroutine 中驱动一个栈
type Session struct {
	stack collection.Stack
}

func NewSession(s collection.Stack) *Session {
	return &Session{stack: s}
}

// maxLineBytes 单行上限, 超出的行整行丢弃并报错
const maxLineBytes = 64 << 10

// Run 逐行执行命令直到 quit 或 EOF
func (s *Session) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	logger := llog.FromContext(ctx)
	reader := bufio.NewReader(r)
	for {
		raw, tooLong, err := readLine(reader)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if tooLong {
			logger.Debugw("line dropped", "limit", maxLineBytes)
			fmt.Fprintf(w, "error: %v\n", fmt.Errorf("%w: line longer than %d bytes", collection.ValueTooLargeErr, maxLineBytes))
			continue
		}

		line := strings.TrimLeft(strings.TrimRight(raw, "\r"), " \t")
		if line == "" {
			continue
		}

		name, arg, hasArg := strings.Cut(line, " ")
		switch name {
		case "push":
			if !hasArg {
				fmt.Fprintln(w, "error: usage: push <value>")
				continue
			}
			if err := s.stack.Push(arg); err != nil {
				logger.Debugw("push rejected", "bytes", len(arg), "error", err)
				fmt.Fprintf(w, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(w, "ok")
		case "pop":
			v, err := s.stack.Pop()
			if err != nil {
				fmt.Fprintf(w, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(w, v)
		case "size":
			fmt.Fprintf(w, "%d/%d\n", s.stack.Size(), s.stack.Capacity())
		case "help":
			fmt.Fprintln(w, helpText)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(w, "error: unknown command %q, try help\n", name)
		}
	}
}

// readLine 读取一整行, 超过 maxLineBytes 时读完剩余部分并返回 tooLong
func readLine(r *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return "", false, err
		}

		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}
