package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"
	"strings"
)

type ErrField struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

func (e *ErrField) Error() string { return e.Field + ": " + e.Msg }

type Errs []ErrField

func (e Errs) Error() string {
	var b strings.Builder
	for i, ef := range e {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(ef.Field + ": " + ef.Msg)
	}
	return b.String()
}

func Required(field, value string) *ErrField {
	if strings.TrimSpace(value) == "" {
		return &ErrField{Field: field, Msg: "required"}
	}
	return nil
}

func MinInt(field string, v, min int64) *ErrField {
	if v < min {
		return &ErrField{Field: field, Msg: "must be >= " + strconv.FormatInt(min, 10)}
	}
	return nil
}

// UserID parses a path id; ids are positive int64s.
func UserID(field, raw string) (int64, *ErrField) {
	if ef := Required(field, raw); ef != nil {
		return 0, ef
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &ErrField{Field: field, Msg: "must be an integer"}
	}
	if ef := MinInt(field, id, 1); ef != nil {
		return 0, ef
	}
	return id, nil
}

const maxAmountBody = 1 << 10

var ErrBadAmountBody = errors.New("body must be a JSON integer or {\"amount\": <integer>}")

// Amount decodes a request body holding either a bare JSON integer or an
// object with an "amount" field. The sign is left to the ledger to judge.
func Amount(body io.Reader) (int64, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxAmountBody))
	if err != nil {
		return 0, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, ErrBadAmountBody
	}

	if raw[0] == '{' {
		var req struct {
			Amount *json.Number `json:"amount"`
		}
		if err := json.Unmarshal(raw, &req); err != nil || req.Amount == nil {
			return 0, ErrBadAmountBody
		}
		return parseInt(string(*req.Amount))
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, ErrBadAmountBody
	}
	return parseInt(string(n))
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrBadAmountBody
	}
	return v, nil
}
