package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25
	MaxLimit     = 100
)

var ErrInvalidNumber = errors.New("invalid number")

// ParseID разбирает числовой идентификатор из path-параметра
func ParseID(s string) (uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidNumber
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, ErrInvalidNumber
	}
	return uint(v), nil
}

// IsNumeric - строка из одних цифр
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParsePagination разбирает page/limit из query. Пустые значения дают значения по умолчанию,
// limit обрезается до MaxLimit. Страница, чьё смещение не помещается в int, считается невалидной.
func ParsePagination(pageStr, limitStr string) (page, limit int, err error) {
	page, err = parsePositive(pageStr, DefaultPage)
	if err != nil {
		return 0, 0, err
	}
	limit, err = parsePositive(limitStr, DefaultLimit)
	if err != nil {
		return 0, 0, err
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if page-1 > math.MaxInt/limit {
		return 0, 0, ErrInvalidNumber
	}
	return page, limit, nil
}

func Offset(page, limit int) int {
	return (page - 1) * limit
}

func parsePositive(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, ErrInvalidNumber
	}
	return v, nil
}
