package domain

import "fmt"

// GenerateInput is the request for a single password. Zero Length and empty Level
// select the configured defaults.
type GenerateInput struct {
	Phrase string
	Length int
	Level  SecurityLevel
}

// String hides the phrase so the input is safe to print.
func (i GenerateInput) String() string {
	return fmt.Sprintf("GenerateInput{Phrase:[REDACTED] Length:%d Level:%s}", i.Length, i.Level)
}

// GoString hides the phrase when printed with %#v.
func (i GenerateInput) GoString() string {
	return i.String()
}
