package config

import (
	"fmt"

	"github.com/mangohow/strstack/tools/collection"
	"github.com/spf13/pflag"
)

// Options 全局配置, 来自命令行参数或 STRSTACK_* 环境变量
type Options struct {
	LogLevel    string
	LogEncoding string
	LogFile     string

	InitialCapacity int
	MaxCapacity     int
	MaxElementBytes int
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.StringVar(&o.LogEncoding, "log-encoding", "console", "log encoding (console, json)")
	fs.StringVar(&o.LogFile, "log-file", "", "also write json logs to this file, rotated")
	fs.IntVar(&o.InitialCapacity, "initial-capacity", collection.DefaultInitialCapacity, "initial stack capacity")
	fs.IntVar(&o.MaxCapacity, "max-capacity", collection.DefaultMaxCapacity, "maximum stack capacity")
	fs.IntVar(&o.MaxElementBytes, "max-element-bytes", collection.DefaultMaxElementBytes, "maximum size of a single value in bytes")
}

func (o *Options) Validate() error {
	if o.InitialCapacity <= 0 {
		return fmt.Errorf("initial-capacity must be positive, got %d", o.InitialCapacity)
	}
	if o.MaxCapacity < o.InitialCapacity {
		return fmt.Errorf("max-capacity %d is less than initial-capacity %d", o.MaxCapacity, o.InitialCapacity)
	}
	if o.MaxElementBytes < 0 {
		return fmt.Errorf("max-element-bytes must not be negative, got %d", o.MaxElementBytes)
	}
	switch o.LogEncoding {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log encoding %q (expected console or json)", o.LogEncoding)
	}
	return nil
}

// NewStack 按配置创建栈, 调用前需要先 Validate
func (o *Options) NewStack() collection.Stack {
	return collection.NewStack(
		collection.WithInitialCapacity(o.InitialCapacity),
		collection.WithMaxCapacity(o.MaxCapacity),
		collection.WithMaxElementBytes(o.MaxElementBytes),
	)
}
