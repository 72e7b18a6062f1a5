// Package shape holds the rectangle exercise and its JSON helpers.
package shape

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/katas/internal/canon"
)

// Rectangle is an axis-aligned rectangle with integer sides.
type Rectangle struct {
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// NewRectangle returns a rectangle with the given sides.
func NewRectangle(width, height int64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns Width * Height.
func (r Rectangle) Area() int64 {
	return r.Width * r.Height
}

// ToJSON returns the canonical JSON representation of v: keys sorted, no
// whitespace.
//
//	ToJSON([]int{1, 2, 3})            // [1,2,3]
//	ToJSON(Rectangle{10, 20})         // {"height":20,"width":10}
func ToJSON(v any) ([]byte, error) {
	return canon.Marshal(v)
}

// FromJSON decodes a single JSON value into a T. Fields that T does not
// declare and trailing data are errors.
func FromJSON[T any](data []byte) (T, error) {
	var out T
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("decode %T: %w", out, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return out, fmt.Errorf("decode %T: trailing data after value", out)
	}
	return out, nil
}
