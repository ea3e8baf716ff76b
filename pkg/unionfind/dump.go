package unionfind

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"uftool/pkg/treeprinter"
)

// childrenIndex 按当前 parent 数组反向建立子节点表，下标升序
func (ds *DisjointSet) childrenIndex() (roots []int, children [][]int) {
	children = make([][]int, len(ds.parent))
	for i, p := range ds.parent {
		if p == i {
			roots = append(roots, i)
			continue
		}
		children[p] = append(children[p], i)
	}
	return roots, children
}

// Forest 把当前的父指针森林画成文本树，根节点标注集合大小
// 不做路径压缩，展示的是真实的树形
func (ds *DisjointSet) Forest(style int) string {
	roots, children := ds.childrenIndex()
	return treeprinter.PrintForest(treeprinter.Forest{
		Roots:    roots,
		Children: func(n int) []int { return children[n] },
		Label: func(n int) string {
			if ds.parent[n] == n {
				return fmt.Sprintf("%d (size=%d)", n, ds.size[n])
			}
			return strconv.Itoa(n)
		},
		Style: style,
	})
}

func dotNodeName(i int) string {
	return "n" + strconv.Itoa(i)
}

// ToDOT 导出 Graphviz 有向图，边从子节点指向父节点
func (ds *DisjointSet) ToDOT() (string, error) {
	const graphName = "forest"
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	for i, p := range ds.parent {
		attrs := map[string]string{"label": strconv.Quote(strconv.Itoa(i))}
		if p == i {
			attrs["label"] = strconv.Quote(fmt.Sprintf("%d (size=%d)", i, ds.size[i]))
			attrs["shape"] = "doublecircle"
		}
		if err := g.AddNode(graphName, dotNodeName(i), attrs); err != nil {
			return "", err
		}
	}
	for i, p := range ds.parent {
		if p == i {
			continue
		}
		if err := g.AddEdge(dotNodeName(i), dotNodeName(p), true, nil); err != nil {
			return "", err
		}
	}
	return g.String(), nil
}
