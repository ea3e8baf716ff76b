package ufbench

import (
	"context"
	"math/rand"
	"time"

	"uftool/pkg/logutil"
	"uftool/pkg/unionfind"
)

// Row 是某个元素个数下多次随机连通的统计结果
type Row struct {
	Size       int     `json:"size"`
	Trials     int     `json:"trials"`
	MeanMillis float64 `json:"mean_ms"`
	MeanDepth  float64 `json:"-"`
}

type Report struct {
	Seed  int64         `json:"seed"`
	Depth bool          `json:"depth"`
	Total time.Duration `json:"-"`
	Rows  []Row         `json:"rows"`
}

// Run 按配置依次对每个 size 跑 Trials 次 unionfind.RandomConnect 并计时
// 每次试验开始前检查 ctx，被取消时返回已经完成的部分和 ctx 的错误
func Run(ctx context.Context, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	report := &Report{Seed: cfg.Seed, Depth: cfg.Depth}
	begin := time.Now()
	defer func() { report.Total = time.Since(begin) }()

	for _, size := range cfg.Sizes {
		logutil.Info("开始压测 size=%d trials=%d", size, cfg.Trials)
		var (
			elapsed  time.Duration
			depthSum int
		)
		for trial := 0; trial < cfg.Trials; trial++ {
			if err := ctx.Err(); err != nil {
				logutil.Warn("压测在 size=%d trial=%d 处被中断", size, trial)
				return report, err
			}
			start := time.Now()
			ds, err := unionfind.RandomConnect(size, rng)
			cost := time.Since(start)
			if err != nil {
				return report, err
			}
			elapsed += cost
			if cfg.Depth {
				depthSum += ds.MaxDepth()
			}
			logutil.Debug("size=%d trial=%d cost=%s", size, trial, cost)
		}

		row := Row{
			Size:       size,
			Trials:     cfg.Trials,
			MeanMillis: float64(elapsed.Microseconds()) / 1000 / float64(cfg.Trials),
		}
		if cfg.Depth {
			row.MeanDepth = float64(depthSum) / float64(cfg.Trials)
		}
		report.Rows = append(report.Rows, row)
		logutil.Info("size=%d 平均耗时 %.3fms", size, row.MeanMillis)
	}
	return report, nil
}
