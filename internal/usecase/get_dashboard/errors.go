package get_dashboard

import "errors"

// ErrInternal ошибка любой из скалярных метрик
var ErrInternal = errors.New("get_dashboard: internal error")
