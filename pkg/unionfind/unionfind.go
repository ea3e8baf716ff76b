package unionfind

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInvalidArgument 构造时元素个数为负数
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIndexOutOfRange 元素下标不在 [0, n) 之间
	ErrIndexOutOfRange = errors.New("index out of range")
)

// DisjointSet 是按大小合并 + 路径压缩的并查集(Weighted Quick Union with Path Compression)
// 非并发安全，多个 goroutine 共享时由调用方自己加锁
type DisjointSet struct {
	parent []int // parent[i] = i 的父节点
	size   []int // size[i] = 以 i 为根的子树大小，只有根节点的值有意义
	count  int   // 连通分量个数
}

// Entry 是诊断输出用的一行 (parent, size)
type Entry struct {
	Parent int `json:"parent"`
	Size   int `json:"size"`
}

// New 初始化并查集，元素范围为 [0, n)，每个元素自成一个集合
func New(n int) (*DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("元素个数 %d 不能为负数: %w", n, ErrInvalidArgument)
	}
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	return &DisjointSet{parent: parent, size: size, count: n}, nil
}

// Count 返回连通分量个数
func (ds *DisjointSet) Count() int {
	return ds.count
}

// Len 返回元素总数 n
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

func (ds *DisjointSet) validate(p int) error {
	n := len(ds.parent)
	if p < 0 || p >= n {
		return fmt.Errorf("下标 %d 不在 0 和 %d 之间: %w", p, n-1, ErrIndexOutOfRange)
	}
	return nil
}

// Find 返回 p 所在集合的根节点
// 两遍扫描：第一遍找到根，第二遍把路径上每个节点直接挂到根下面
func (ds *DisjointSet) Find(p int) (int, error) {
	if err := ds.validate(p); err != nil {
		return 0, err
	}
	return ds.root(p), nil
}

// root 要求 p 已经校验过
func (ds *DisjointSet) root(p int) int {
	root := p
	for root != ds.parent[root] {
		root = ds.parent[root]
	}
	for p != root {
		next := ds.parent[p]
		ds.parent[p] = root
		p = next
	}
	return root
}

// Connected 判断两个元素是否在同一个集合
func (ds *DisjointSet) Connected(p, q int) (bool, error) {
	rootP, err := ds.Find(p)
	if err != nil {
		return false, err
	}
	rootQ, err := ds.Find(q)
	if err != nil {
		return false, err
	}
	return rootP == rootQ, nil
}

// Union 合并 p 和 q 所在的集合，小树挂到大树下面
// 大小相同时 q 的根挂到 p 的根下面
func (ds *DisjointSet) Union(p, q int) error {
	// 先把两个下标都校验完，保证出错时不修改任何状态
	if err := ds.validate(p); err != nil {
		return err
	}
	if err := ds.validate(q); err != nil {
		return err
	}
	rootP := ds.root(p)
	rootQ := ds.root(q)
	if rootP == rootQ {
		return nil // 已经在同一个集合
	}

	if ds.size[rootP] < ds.size[rootQ] {
		ds.parent[rootP] = rootQ
		ds.size[rootQ] += ds.size[rootP]
	} else {
		ds.parent[rootQ] = rootP
		ds.size[rootP] += ds.size[rootQ]
	}
	ds.count--
	return nil
}

// Size 返回 p 所在集合的大小
func (ds *DisjointSet) Size(p int) (int, error) {
	root, err := ds.Find(p)
	if err != nil {
		return 0, err
	}
	return ds.size[root], nil
}

// Entries 返回每个元素当前的 (parent, size)，只用于调试
// 非根节点的 size 是过期值
func (ds *DisjointSet) Entries() []Entry {
	entries := make([]Entry, len(ds.parent))
	for i := range ds.parent {
		entries[i] = Entry{Parent: ds.parent[i], Size: ds.size[i]}
	}
	return entries
}

// Show 按 "i: parent, size" 的格式逐行输出
func (ds *DisjointSet) Show(w io.Writer) error {
	for i := range ds.parent {
		if _, err := fmt.Fprintf(w, "%d: %d, %d\n", i, ds.parent[i], ds.size[i]); err != nil {
			return err
		}
	}
	return nil
}

// MaxDepth 返回森林中最深节点到根的边数
// 只读，不做路径压缩
func (ds *DisjointSet) MaxDepth() int {
	maxDepth := 0
	for i := range ds.parent {
		depth := 0
		for root := i; root != ds.parent[root]; root = ds.parent[root] {
			depth++
		}
		maxDepth = max(maxDepth, depth)
	}
	return maxDepth
}
