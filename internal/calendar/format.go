package calendar

import "fmt"

func formatYMD(year int32, month, day uint8) string {
	if year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -int64(year), month, day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
