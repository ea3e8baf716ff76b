package unionfind

// IndexSource 随机下标来源，返回 [0, n) 中的一个数
// *rand.Rand 直接满足这个接口
type IndexSource interface {
	Intn(n int) int
}

// RandomConnect 新建 n 个元素的并查集，随机挑选两个元素，不连通就合并，
// 直到只剩一个连通分量为止，返回最终的结构
func RandomConnect(n int, src IndexSource) (*DisjointSet, error) {
	ds, err := New(n)
	if err != nil {
		return nil, err
	}
	for ds.count > 1 {
		p := src.Intn(n)
		q := src.Intn(n)
		connected, err := ds.Connected(p, q)
		if err != nil {
			return nil, err
		}
		if !connected {
			if err := ds.Union(p, q); err != nil {
				return nil, err
			}
		}
	}
	return ds, nil
}
