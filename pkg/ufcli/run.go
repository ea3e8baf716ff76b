package ufcli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"uftool/pkg/errorutil"
	"uftool/pkg/logutil"
	"uftool/pkg/treeprinter"
	"uftool/pkg/unionfind"
)

type DumpFormat string

const (
	DumpNone DumpFormat = "none"
	DumpText DumpFormat = "text"
	DumpTree DumpFormat = "tree"
	DumpDOT  DumpFormat = "dot"
	DumpJSON DumpFormat = "json"
)

// 为了让 VarP 接收自定义类型，实现 flag.Value 接口(String Set Type)即可：
func (f *DumpFormat) String() string { return string(*f) }

func (f *DumpFormat) Set(val string) error {
	for _, v := range f.Values() {
		if v == val {
			*f = DumpFormat(val)
			return nil
		}
	}
	return fmt.Errorf("无效的 dump 格式: %s", val)
}

func (f *DumpFormat) Type() string {
	return "dumpformat"
}

// 列出所有的合法值
func (DumpFormat) Values() []string {
	return []string{
		string(DumpNone),
		string(DumpText),
		string(DumpTree),
		string(DumpDOT),
		string(DumpJSON),
	}
}

type runOptions struct {
	N       int
	Unions  []string
	Finds   []int
	Dump    DumpFormat
	Unicode bool
}

// parsePair 解析 "p:q" 形式的合并参数
func parsePair(s string) (int, int, error) {
	left, right, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("合并参数 %q 应为 p:q 格式", s)
	}
	p, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("合并参数 %q 非法: %w", s, err)
	}
	q, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("合并参数 %q 非法: %w", s, err)
	}
	return p, q, nil
}

// RunCmd 构造 run 子命令：建一个并查集，依次合并、查找并输出结果
func RunCmd() *cobra.Command {
	opts := runOptions{Dump: DumpTree}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "按给定的合并序列构建并查集并输出诊断信息",
		Example: "  uftool run -n 5 -u 0:1 -u 2:3 -u 1:2 -f 3 --dump tree\n" +
			"  uftool run -n 8 -u 0:7 --dump dot | dot -Tpng > forest.png",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnionFind(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.N, "n", "n", 0, "元素个数")
	cmd.Flags().StringArrayVarP(&opts.Unions, "union", "u", nil, "合并 p:q，可以重复指定")
	cmd.Flags().IntSliceVarP(&opts.Finds, "find", "f", nil, "合并完成后查找的元素")
	cmd.Flags().VarP(&opts.Dump, "dump", "d", "输出格式("+strings.Join(opts.Dump.Values(), "/")+")")
	cmd.Flags().BoolVar(&opts.Unicode, "unicode", false, "tree 格式使用 unicode 连线")
	return cmd
}

func runUnionFind(cmd *cobra.Command, opts runOptions) error {
	// 先把所有参数解析完，再动结构
	pairs := make([][2]int, 0, len(opts.Unions))
	for _, u := range opts.Unions {
		p, q, err := parsePair(u)
		if err != nil {
			return errorutil.NewExitError(errorutil.CodeInvalidUsage, err)
		}
		pairs = append(pairs, [2]int{p, q})
	}

	ds, err := unionfind.New(opts.N)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, pair := range pairs {
		if err := ds.Union(pair[0], pair[1]); err != nil {
			return err
		}
		logutil.Debug("union(%d, %d) count=%d", pair[0], pair[1], ds.Count())
	}
	for _, p := range opts.Finds {
		root, err := ds.Find(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "find(%d) = %d\n", p, root)
	}
	fmt.Fprintf(out, "count = %d\n", ds.Count())

	switch opts.Dump {
	case DumpText:
		return ds.Show(out)
	case DumpTree:
		style := treeprinter.StyleASCII
		if opts.Unicode {
			style = treeprinter.StyleUnicode
		}
		fmt.Fprint(out, ds.Forest(style))
	case DumpDOT:
		dot, err := ds.ToDOT()
		if err != nil {
			return err
		}
		fmt.Fprint(out, dot)
	case DumpJSON:
		doc, err := dumpJSON(ds)
		if err != nil {
			return err
		}
		fmt.Fprint(out, doc)
	}
	return nil
}

func dumpJSON(ds *unionfind.DisjointSet) (string, error) {
	doc := "{}"
	var err error
	if doc, err = sjson.Set(doc, "n", ds.Len()); err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "count", ds.Count()); err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "max_depth", ds.MaxDepth()); err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "entries", ds.Entries()); err != nil {
		return "", err
	}
	return string(pretty.Pretty([]byte(doc))), nil
}
