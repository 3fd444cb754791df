package export

import (
	"fmt"
	"math"
)

// FormatSRTTime 将秒数格式化为SRT时间格式 (HH:MM:SS,mmm)
// 各字段均为截断而非四舍五入，例如 x.9996 秒的毫秒为 999
func FormatSRTTime(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secs := int(math.Mod(seconds, 60))
	milliseconds := int(math.Mod(seconds, 1) * 1000)

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, milliseconds)
}

// FormatVTTTime 将秒数格式化为WebVTT时间格式 (HH:MM:SS.mmm)
// 与SRT格式的唯一区别是毫秒分隔符为点号
func FormatVTTTime(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secs := int(math.Mod(seconds, 60))
	milliseconds := int(math.Mod(seconds, 1) * 1000)

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, milliseconds)
}
