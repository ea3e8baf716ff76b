package ufbench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 压测配置不合法
var ErrInvalidConfig = errors.New("invalid bench config")

// DefaultSizes 默认压测的元素个数，每次翻倍
var DefaultSizes = []int{20000, 40000, 80000, 160000, 320000, 640000, 1280000, 2560000}

const DefaultTrials = 100

// Config 是一次压测的参数，可以从 yaml 文件加载
//
//	sizes: [1000, 2000]
//	trials: 10
//	seed: 42
//	depth: true
type Config struct {
	Sizes  []int `yaml:"sizes"`
	Trials int   `yaml:"trials"`
	Seed   int64 `yaml:"seed"`
	Depth  bool  `yaml:"depth"` // 是否同时统计最大树深
}

func DefaultConfig() Config {
	return Config{
		Sizes:  append([]int(nil), DefaultSizes...),
		Trials: DefaultTrials,
		Seed:   1,
	}
}

// LoadConfig 读取 yaml 配置，文件里没写的字段保留默认值
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("解析配置文件 %s 失败: %w: %w", path, ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("sizes 不能为空: %w", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return fmt.Errorf("size %d 不能为负数: %w", n, ErrInvalidConfig)
		}
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials 必须大于 0，当前 %d: %w", c.Trials, ErrInvalidConfig)
	}
	return nil
}
