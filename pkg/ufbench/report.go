package ufbench

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// 列宽按显示宽度计算，中文表头也能对齐
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}

// WriteText 输出对齐的文本表格
func (r *Report) WriteText(w io.Writer) error {
	headers := []string{"元素个数", "试验次数", "平均耗时(ms)"}
	if r.Depth {
		headers = append(headers, "平均最大树深")
	}

	cells := make([][]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		line := []string{
			humanize.Comma(int64(row.Size)),
			humanize.Comma(int64(row.Trials)),
			humanize.FtoaWithDigits(row.MeanMillis, 3),
		}
		if r.Depth {
			line = append(line, humanize.FtoaWithDigits(row.MeanDepth, 2))
		}
		cells = append(cells, line)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, line := range cells {
		for i, c := range line {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padRight(h, widths[i]))
	}
	b.WriteString("\n")
	for _, line := range cells {
		for i, c := range line {
			if i > 0 {
				b.WriteString("  ")
			}
			// 数字右对齐
			b.WriteString(padLeft(c, widths[i]))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "种子: %d  总耗时: %s\n", r.Seed, r.Total.Round(1e6))

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON 返回格式化后的 JSON 报告
func (r *Report) JSON() (string, error) {
	out := `{"rows":[]}`
	var err error
	if out, err = sjson.Set(out, "seed", r.Seed); err != nil {
		return "", err
	}
	if out, err = sjson.Set(out, "depth", r.Depth); err != nil {
		return "", err
	}
	if out, err = sjson.Set(out, "total_ms", r.Total.Milliseconds()); err != nil {
		return "", err
	}
	for i, row := range r.Rows {
		if out, err = sjson.Set(out, "rows.-1", row); err != nil {
			return "", err
		}
		// 开启统计时树深为 0 也要输出
		if r.Depth {
			if out, err = sjson.Set(out, fmt.Sprintf("rows.%d.mean_depth", i), row.MeanDepth); err != nil {
				return "", err
			}
		}
	}
	return string(pretty.Pretty([]byte(out))), nil
}
