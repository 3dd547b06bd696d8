package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTitleLength is the maximum number of characters in a note title.
	MaxTitleLength = 255
	// MaxContentBytes caps note content size.
	MaxContentBytes = 65535
)

// ValidateTitle checks that a title is present and within MaxTitleLength characters.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("is too long (max %d characters)", MaxTitleLength),
		}
	}
	return nil
}

// ValidateContent checks that content is present and no larger than MaxContentBytes.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	if len(content) > MaxContentBytes {
		return &ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("is too long (max %d bytes)", MaxContentBytes),
		}
	}
	return nil
}
