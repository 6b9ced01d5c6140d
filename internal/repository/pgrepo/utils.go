package pgrepo

import (
	"fmt"
	"math"

	"github.com/fsdevblog/smmpanel/internal/repository/repoargs"
)

// safeConvertUintToInt32 безопасно конвертирует uint в int32. В случае выхода значения за рамки диапазона
// выбрасывает ошибку.
func safeConvertUintToInt32(val uint) (int32, error) {
	if val > uint(math.MaxInt32) {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int32(val), nil
}

func pageArgs(p repoargs.Page) (int32, int32, error) {
	p = p.Normalize()
	limit, err := safeConvertUintToInt32(p.Limit)
	if err != nil {
		return 0, 0, err
	}
	offset, err := safeConvertUintToInt32(p.Offset)
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}
