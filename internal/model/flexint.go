package model

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// FlexInt 는 JSON 숫자와 숫자 문자열("2")을 모두 정수로 받는다.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	raw := bytes.TrimSpace(b)
	kind := "number"
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		raw = []byte(strings.TrimSpace(s))
		kind = "string"
	}

	if v, err := strconv.ParseInt(string(raw), 10, 0); err == nil {
		*n = FlexInt(v)
		return nil
	}
	// 2.0 같은 정수값 실수
	if f, err := strconv.ParseFloat(string(raw), 64); err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
		*n = FlexInt(f)
		return nil
	}

	if len(raw) > 0 && (raw[0] == '{' || raw[0] == '[') {
		kind = "object"
	} else if bytes.Equal(raw, []byte("true")) || bytes.Equal(raw, []byte("false")) {
		kind = "bool"
	}
	return &json.UnmarshalTypeError{Value: kind, Type: reflect.TypeOf(FlexInt(0))}
}
