package ufcli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uftool/pkg/errorutil"
	"uftool/pkg/logutil"
	"uftool/pkg/ufbench"
	"uftool/pkg/unionfind"
)

const TOOL_VERSION = "1.0.0+20261018"

// NewRootCmd 构造 uftool 根命令，挂上所有子命令
func NewRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "uftool",
		Short: fmt.Sprintf("uftool v%s 并查集(按大小合并+路径压缩)演示与压测工具", TOOL_VERSION),
	}

	var logFile string
	logLevel := logutil.WARN

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	rootCmd.PersistentFlags().VarP(&logLevel, "log-level", "e", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "uftool.log", "日志文件名(stdout 表示标准输出)")
	// 阻止 Cobra 在命令参数错误时输出帮助
	rootCmd.SilenceUsage = true
	// 阻止Cobra自动打印RunEs返回的错误内容
	rootCmd.SilenceErrors = true

	// 这个钩子会在用户的命令解析完成、flag 值填充后执行
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := logutil.InitLogger(logFile, logLevel); err != nil {
			return errorutil.NewExitError(errorutil.CodeIOError, err)
		}
		return nil
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errorutil.NewExitErrorWithMessage(errorutil.CodeInvalidUsage, "参数错误", err)
	})

	rootCmd.AddCommand(RunCmd(), BenchCmd(), versionCmd())
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "显示版本号",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "uftool v%s\n", TOOL_VERSION)
			return nil
		},
	}
}

// classify 把领域错误转换成带退出码的错误，已经带码的原样返回
func classify(err error) error {
	if err == nil || errorutil.ExitCodeFromError(err) != errorutil.CodeInternalErr {
		return err
	}
	switch {
	case errors.Is(err, unionfind.ErrIndexOutOfRange), errors.Is(err, unionfind.ErrInvalidArgument):
		return errorutil.NewExitError(errorutil.CodeInvalidData, err)
	case errors.Is(err, ufbench.ErrInvalidConfig):
		return errorutil.NewExitError(errorutil.CodeConfigError, err)
	case errors.Is(err, os.ErrNotExist):
		return errorutil.NewExitError(errorutil.CodeMissingInput, err)
	case errors.Is(err, context.Canceled):
		return errorutil.NewExitError(errorutil.CodeCanceled, err)
	}
	return err
}

// Execute 执行根命令，返回进程退出码
// 错误以 JSON 形式写到命令的 stderr
func Execute(ctx context.Context, rootCmd *cobra.Command) int {
	err := classify(rootCmd.ExecuteContext(ctx))
	if err != nil {
		logutil.Error("命令执行失败: %v", err)
		msg, code := errorutil.FormatErrorAndCode(err)
		fmt.Fprintln(rootCmd.ErrOrStderr(), msg)
		logutil.CloseLogger()
		return code
	}
	logutil.CloseLogger()
	return errorutil.CodeSuccess
}
