package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// NaiveLayout формат вывода naive времени (без смещения)
const NaiveLayout = "2006-01-02T15:04:05.999999"

// naiveInputLayouts допустимые форматы входного времени
// Форматы со смещением идут первыми: смещение отбрасывается в ToNaive
var naiveInputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ToNaive отбрасывает часовой пояс, сохраняя настенное время
// Это НЕ конвертация в UTC: 10:00+03:00 превращается в 10:00, а не в 07:00
func ToNaive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// ToNaivePtr то же, что ToNaive, но для опциональных значений
func ToNaivePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	naive := ToNaive(*t)
	return &naive
}

// NaiveNow возвращает текущее время UTC в naive представлении
func NaiveNow() time.Time {
	return ToNaive(time.Now().UTC())
}

// ParseNaive парсит строку времени в одном из допустимых форматов и отбрасывает смещение
func ParseNaive(s string) (time.Time, error) {
	for _, layout := range naiveInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return ToNaive(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time string format: %q", s)
}

// NaiveTime время без часового пояса для HTTP моделей
type NaiveTime struct {
	time.Time
}

// NewNaiveTime создает NaiveTime из time.Time (смещение отбрасывается)
func NewNaiveTime(t time.Time) NaiveTime {
	return NaiveTime{Time: ToNaive(t)}
}

// UnmarshalJSON принимает строку в любом из допустимых форматов
func (n *NaiveTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := ParseNaive(s)
	if err != nil {
		return err
	}

	n.Time = t
	return nil
}

// MarshalJSON выводит время без смещения
func (n NaiveTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// String возвращает время в формате NaiveLayout
func (n NaiveTime) String() string {
	return n.Time.Format(NaiveLayout)
}

// Ptr возвращает указатель на time.Time или nil для nil NaiveTime
func (n *NaiveTime) Ptr() *time.Time {
	if n == nil {
		return nil
	}
	t := n.Time
	return &t
}
