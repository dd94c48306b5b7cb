package helper

import (
	"fmt"
	"math"
)

// FormatDistance は距離を表示用文字列にする（四捨五入して1000m以上ならkm表記で小数1桁）
func FormatDistance(meters float64) string {
	rounded := math.Round(meters)
	if rounded >= 1000 {
		return fmt.Sprintf("%.1fkm", meters/1000)
	}
	return fmt.Sprintf("%dm", int(rounded))
}

// FormatDuration は所要時間を表示用文字列にする（60分以上は「H시간 M분」、0分は省略）
func FormatDuration(seconds float64) string {
	minutes := int(math.Round(seconds / 60))
	if minutes >= 60 {
		hours := minutes / 60
		rest := minutes % 60
		if rest == 0 {
			return fmt.Sprintf("%d시간", hours)
		}
		return fmt.Sprintf("%d시간 %d분", hours, rest)
	}
	return fmt.Sprintf("%d분", minutes)
}
