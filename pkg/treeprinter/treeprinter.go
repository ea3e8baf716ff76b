package treeprinter

import (
	"fmt"
	"strings"
)

const (
	StyleASCII   = 0
	StyleUnicode = 1
)

// Forest 描述一个以整数下标标识节点的森林(多棵多叉树)
type Forest struct {
	Roots    []int
	Children func(int) []int  // 获取子节点列表
	Label    func(int) string // 可选的自定义节点格式化函数
	Style    int              // 0 = ascii, 1 = unicode
}

type branchGlyphs struct {
	last   string
	middle string
	space  string
}

func glyphs(style int) branchGlyphs {
	if style == StyleUnicode {
		return branchGlyphs{last: "└── ", middle: "├── ", space: "│   "}
	}
	return branchGlyphs{last: "'-- ", middle: ".-- ", space: "|   "}
}

// PrintForest 把森林中的每棵树依次打印出来，树之间不加空行
func PrintForest(f Forest) string {
	if len(f.Roots) == 0 {
		return "forest is empty\n"
	}

	g := glyphs(f.Style)
	label := f.Label
	if label == nil {
		label = func(n int) string { return fmt.Sprintf("%d", n) }
	}

	var b strings.Builder

	// 用显式栈而不是递归，路径压缩前的树可能很深
	type frame struct {
		node   int
		prefix string
		isLast bool
		isRoot bool
	}

	for _, root := range f.Roots {
		stack := []frame{{node: root, isRoot: true, isLast: true}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			childPrefix := top.prefix
			if top.isRoot {
				fmt.Fprintf(&b, "%s\n", label(top.node))
			} else {
				connector := g.middle
				if top.isLast {
					connector = g.last
					childPrefix += "    "
				} else {
					childPrefix += g.space
				}
				fmt.Fprintf(&b, "%s%s%s\n", top.prefix, connector, label(top.node))
			}

			children := f.Children(top.node)
			// 逆序入栈，保证按原顺序输出
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{
					node:   children[i],
					prefix: childPrefix,
					isLast: i == len(children)-1,
				})
			}
		}
	}

	return b.String()
}
