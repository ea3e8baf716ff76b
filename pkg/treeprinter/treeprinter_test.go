package treeprinter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"uftool/pkg/treeprinter"
)

func TestPrintForest(t *testing.T) {
	children := map[int][]int{
		0: {1, 4},
		1: {2, 3},
		5: {6},
	}
	f := treeprinter.Forest{
		Roots:    []int{0, 5},
		Children: func(n int) []int { return children[n] },
		Style:    treeprinter.StyleUnicode,
	}

	want := "0\n" +
		"├── 1\n" +
		"│   ├── 2\n" +
		"│   └── 3\n" +
		"└── 4\n" +
		"5\n" +
		"└── 6\n"
	got := treeprinter.PrintForest(f)
	t.Logf("forest:\n%s", got)
	assert.Equal(t, want, got)
}

func TestPrintForestASCIILabel(t *testing.T) {
	f := treeprinter.Forest{
		Roots:    []int{7},
		Children: func(n int) []int { return nil },
		Label:    func(n int) string { return "root-7" },
	}
	assert.Equal(t, "root-7\n", treeprinter.PrintForest(f))
	assert.Equal(t, "forest is empty\n", treeprinter.PrintForest(treeprinter.Forest{}))
}
