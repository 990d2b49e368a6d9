package normalization

import (
  "strings"
)

// ParseInputString lowercases and trims identifier-like input (emails, usernames).
func ParseInputString(input string) string {
  return strings.ToLower(strings.TrimSpace(input))
}

// TrimInputString trims free-form input without changing its case.
func TrimInputString(input string) string {
  return strings.TrimSpace(input)
}
