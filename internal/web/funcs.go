package web

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/vbonduro/councilweb/internal/service"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"inc":        func(i int) int { return i + 1 },
		"sub":        func(a, b int) int { return a - b },
		"fileSize":   fileSize,
		"comma":      humanize.Comma,
		"commaInt":   func(n int) string { return humanize.Comma(int64(n)) },
		"lowStock":   service.IsLowStock,
		"monthLabel": monthLabel,
		"yearLabel":  yearLabel,
		"thumb":      thumb,
		"dday":       dday,
		"withParam":  withParam,
	}
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// fileSize formats a byte count in 1024 steps with at most two decimals,
// "2.34 MB" style. Unknown sizes render as "0 B".
func fileSize(n int64) string {
	if n <= 0 {
		return "0 B"
	}
	v := float64(n)
	unit := 0
	for v >= 1024 && unit < len(sizeUnits)-1 {
		v /= 1024
		unit++
	}
	return humanize.FtoaWithDigits(v, 2) + " " + sizeUnits[unit]
}

func monthLabel(year, month int) string {
	return fmt.Sprintf("%d년 %d월", year, month)
}

func yearLabel(year int) string {
	if year == 0 {
		return "전체"
	}
	return strconv.Itoa(year) + "년"
}

// thumb asks the asset handler for a scaled copy of a locally served image.
// Other URLs are returned unchanged.
func thumb(src string, width int) string {
	if !strings.HasPrefix(src, "/assets/") {
		return src
	}
	return src + "?" + url.Values{"w": {strconv.Itoa(width)}}.Encode()
}

func dday(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("D-%d", n)
	case n == 0:
		return "D-Day"
	default:
		return "마감"
	}
}

// withParam sets one query parameter on a relative or absolute URL.
func withParam(raw, key string, value any) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Set(key, fmt.Sprint(value))
	u.RawQuery = q.Encode()
	return u.String()
}
