// Package models defines the client-side view of security keys, sessions
// and profiles.
package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/securevault/internal/common"
)

// KeyType classifies a security key.
type KeyType string

const (
	KeyTypePassword KeyType = "password"
	KeyTypeAPIKey   KeyType = "api_key"
	KeyTypePasskey  KeyType = "passkey"
	KeyTypeOther    KeyType = "other"
)

// KeyTypes lists every known key type in display order.
var KeyTypes = []KeyType{KeyTypePassword, KeyTypeAPIKey, KeyTypePasskey, KeyTypeOther}

func (t KeyType) Valid() bool {
	return slices.Contains(KeyTypes, t)
}

// Label is the human readable name of the type.
func (t KeyType) Label() string {
	switch t {
	case KeyTypePassword:
		return "Password"
	case KeyTypeAPIKey:
		return "API Key"
	case KeyTypePasskey:
		return "Passkey"
	case KeyTypeOther:
		return "Other"
	}
	return string(t)
}

// SecurityKey mirrors a stored row. ID, UserID and CreatedAt are assigned by
// the server and never change afterwards.
type SecurityKey struct {
	ID          string
	UserID      string
	Name        string
	Type        KeyType
	Description string
	Value       string
	URL         string
	Username    string
	Tags        []string
	ExpiresAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy, so snapshots handed to views cannot alias the
// store's records.
func (k *SecurityKey) Clone() *SecurityKey {
	if k == nil {
		return nil
	}
	c := *k
	c.Tags = slices.Clone(k.Tags)
	if k.ExpiresAt != nil {
		t := *k.ExpiresAt
		c.ExpiresAt = &t
	}
	return &c
}

// Expired reports whether the key has an expiry at or before now.
func (k *SecurityKey) Expired(now time.Time) bool {
	return k.ExpiresAt != nil && !k.ExpiresAt.After(now)
}

// Input returns the editable field set of the key, used to prefill edit
// forms.
func (k *SecurityKey) Input() KeyInput {
	in := KeyInput{
		Name:        k.Name,
		Type:        k.Type,
		Description: k.Description,
		Value:       k.Value,
		URL:         k.URL,
		Username:    k.Username,
		Tags:        slices.Clone(k.Tags),
	}
	if k.ExpiresAt != nil {
		t := *k.ExpiresAt
		in.ExpiresAt = &t
	}
	return in
}

// KeyInput is the editable field set sent on insert and, as a whole, on
// update.
type KeyInput struct {
	Name        string
	Type        KeyType
	Description string
	Value       string
	URL         string
	Username    string
	Tags        []string
	ExpiresAt   *time.Time
}

// ValidationError names the field that failed local validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return common.ErrorValidation
}

// Validate checks the required fields. It returns a *ValidationError for the
// first field that fails.
func (in KeyInput) Validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return &ValidationError{Field: "name", Message: "Name is required"}
	case in.Type == "":
		return &ValidationError{Field: "type", Message: "Type is required"}
	case !in.Type.Valid():
		return &ValidationError{Field: "type", Message: fmt.Sprintf("Unknown key type %q", in.Type)}
	case in.Value == "":
		return &ValidationError{Field: "value", Message: "Value is required"}
	}
	return nil
}

var ErrIncorrectTags = errors.New("tags must be a comma separated list")

// TagsFromString splits a comma separated list, trimming blanks and dropping
// exact duplicates.
func TagsFromString(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var tags []string
	for _, part := range strings.Split(s, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			return nil, ErrIncorrectTags
		}
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}
