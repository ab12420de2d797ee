package generator

import "strconv"

const (
	arrayOpen  = "{"
	arrayClose = "};"
	separator  = ", "
)

// FormatArray renders values as a C array initializer, e.g. {1, 2, 3};
func FormatArray(values []int64) string {
	// 4 bytes covers the default 1..1000 range plus separator
	buf := make([]byte, 0, len(arrayOpen)+len(arrayClose)+len(values)*(len(separator)+4))
	buf = append(buf, arrayOpen...)
	for i, v := range values {
		if i > 0 {
			buf = append(buf, separator...)
		}
		buf = strconv.AppendInt(buf, v, 10)
	}
	buf = append(buf, arrayClose...)
	return string(buf)
}
