package models

import "fmt"

// Element is the value object the core service builds on every call.
// It is never persisted.
type Element struct {
	Value string `json:"value"`
}

func NewElement(value string) *Element {
	return &Element{Value: value}
}

func (e *Element) String() string {
	return fmt.Sprintf("Element{value=%s}", e.Value)
}
