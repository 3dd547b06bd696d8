package entity

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "simple title", title: "Groceries", wantErr: false},
		{name: "multibyte title at limit", title: strings.Repeat("あ", MaxTitleLength), wantErr: false},
		{name: "empty title", title: "", wantErr: true},
		{name: "whitespace only", title: "   \t", wantErr: true},
		{name: "too long", title: strings.Repeat("a", MaxTitleLength+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateTitle(%q) error = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
			if err != nil {
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("expected *ValidationError, got %T", err)
				}
				if ve.Field != "title" {
					t.Errorf("Field = %q, want %q", ve.Field, "title")
				}
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "simple content", content: "milk, eggs", wantErr: false},
		{name: "at limit", content: strings.Repeat("x", MaxContentBytes), wantErr: false},
		{name: "empty", content: "", wantErr: true},
		{name: "too large", content: strings.Repeat("x", MaxContentBytes+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateContent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
