// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/graphics/array"
	"cogentcore.org/graphics/handle"
)

// Value parses the words of a property value. A single number is a
// float64, [a b; c d] is a matrix, {a,b} is a list of strings, and
// $name is the handle of a variable. Anything else is text, with the
// words joined by spaces.
func (s *Script) Value(words ...string) (any, error) {
	str := strings.TrimSpace(strings.Join(words, " "))
	switch {
	case strings.HasPrefix(str, "["):
		return ParseMatrix(str)
	case strings.HasPrefix(str, "{") && strings.HasSuffix(str, "}"):
		var list []string
		for _, e := range strings.Split(str[1:len(str)-1], ",") {
			list = append(list, strings.TrimSpace(e))
		}
		return list, nil
	case strings.HasPrefix(str, "$") && len(words) == 1:
		return s.Handle(str)
	}
	if len(words) == 1 {
		if f, err := strconv.ParseFloat(str, 64); err == nil {
			return f, nil
		}
	}
	return str, nil
}

// ParseMatrix parses a matrix in bracketed row form, such as
// "[1 2; 3 4]". Commas may also separate the values of a row.
func ParseMatrix(str string) (*array.Array, error) {
	str = strings.TrimSpace(str)
	if !strings.HasPrefix(str, "[") || !strings.HasSuffix(str, "]") {
		return nil, fmt.Errorf("invalid matrix %q: missing brackets", str)
	}
	body := strings.TrimSpace(str[1 : len(str)-1])
	if body == "" {
		return array.Empty(), nil
	}
	var rows [][]float64
	for _, rs := range strings.Split(body, ";") {
		fields := strings.FieldsFunc(rs, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid matrix %q: %w", str, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return array.Matrix(rows)
}

// Format returns the text form of a property value, in the form
// that [Script.Value] parses.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "[]"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case handle.Handle:
		return x.String()
	case *array.Array:
		return x.String()
	case []string:
		return "{" + strings.Join(x, ",") + "}"
	case []float64:
		return array.Row(x...).String()
	case fmt.Stringer:
		return x.String()
	}
	if isFunc(v) {
		return "<function>"
	}
	return fmt.Sprint(v)
}

// plain converts a property value to a form that can
// be written as YAML.
func plain(v any) any {
	switch x := v.(type) {
	case nil, string, float64, bool, []string:
		return x
	case handle.Handle:
		if !x.IsValid() {
			return nil
		}
		return float64(x)
	case *array.Array:
		if x.IsScalar() {
			return x.At(0)
		}
		if x.Rows() == 1 {
			return x.Values()
		}
		rows := make([][]float64, x.Rows())
		for r := range rows {
			rows[r] = make([]float64, x.Cols())
			for c := range rows[r] {
				rows[r][c] = x.At2(r, c)
			}
		}
		return rows
	}
	return Format(v)
}
