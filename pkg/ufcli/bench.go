package ufcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"uftool/pkg/errorutil"
	"uftool/pkg/ufbench"
)

type benchOptions struct {
	ConfigFile string
	Format     string
	Config     ufbench.Config
}

// BenchCmd 构造 bench 子命令：对多个元素个数重复随机连通并统计平均耗时
func BenchCmd() *cobra.Command {
	opts := benchOptions{Format: "text", Config: ufbench.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "随机连通压测，统计每个元素个数下的平均耗时",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveBenchConfig(cmd, opts)
			if err != nil {
				return err
			}
			if opts.Format != "text" && opts.Format != "json" {
				return errorutil.NewExitError(errorutil.CodeInvalidUsage,
					fmt.Errorf("无效的输出格式: %s", opts.Format))
			}

			report, err := ufbench.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if opts.Format == "json" {
				doc, err := report.JSON()
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}
			return report.WriteText(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "yaml 配置文件，命令行显式指定的参数优先")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", opts.Format, "输出格式(text/json)")
	cmd.Flags().IntSliceVarP(&opts.Config.Sizes, "sizes", "s", opts.Config.Sizes, "元素个数列表")
	cmd.Flags().IntVarP(&opts.Config.Trials, "trials", "t", opts.Config.Trials, "每个元素个数的试验次数")
	cmd.Flags().Int64Var(&opts.Config.Seed, "seed", opts.Config.Seed, "随机数种子")
	cmd.Flags().BoolVar(&opts.Config.Depth, "depth", opts.Config.Depth, "同时统计平均最大树深")
	return cmd
}

// resolveBenchConfig 合并配置文件和命令行参数
func resolveBenchConfig(cmd *cobra.Command, opts benchOptions) (ufbench.Config, error) {
	if opts.ConfigFile == "" {
		return opts.Config, nil
	}
	cfg, err := ufbench.LoadConfig(opts.ConfigFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("sizes") {
		cfg.Sizes = opts.Config.Sizes
	}
	if flags.Changed("trials") {
		cfg.Trials = opts.Config.Trials
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.Config.Seed
	}
	if flags.Changed("depth") {
		cfg.Depth = opts.Config.Depth
	}
	return cfg, nil
}
