package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// OptionalFloat - числовое поле сигнала, которое может отсутствовать.
// Некорректное значение при разборе JSON не приводит к ошибке, а считается отсутствующим.
type OptionalFloat struct {
	Value float64
	Valid bool
}

// Float возвращает заданное OptionalFloat
func Float(v float64) OptionalFloat {
	return OptionalFloat{Value: v, Valid: true}
}

// UnmarshalJSON принимает число или строку с числом, всё остальное - отсутствие значения
func (f *OptionalFloat) UnmarshalJSON(data []byte) error {
	*f = OptionalFloat{}

	raw := string(bytes.TrimSpace(data))
	if raw == "" || raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*f = Float(v)
	return nil
}

// MarshalJSON выводит null для отсутствующего значения
func (f OptionalFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// OptionalString - строковое поле сигнала, которое может отсутствовать.
type OptionalString struct {
	Value string
	Valid bool
}

// String возвращает заданное OptionalString
func String(v string) OptionalString {
	return OptionalString{Value: v, Valid: true}
}

// UnmarshalJSON принимает только JSON-строку, остальные типы считаются отсутствием значения
func (s *OptionalString) UnmarshalJSON(data []byte) error {
	*s = OptionalString{}

	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*s = String(v)
	return nil
}

func (s OptionalString) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}

// Flag - логический признак с нестрогим разбором: true, ненулевое число или непустая строка.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	*f = false

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	switch val := v.(type) {
	case bool:
		*f = Flag(val)
	case float64:
		*f = val != 0
	case string:
		*f = val != ""
	case []any:
		*f = len(val) > 0
	case map[string]any:
		*f = len(val) > 0
	}
	return nil
}
