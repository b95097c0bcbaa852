package services

import (
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/securevault/internal/client/models"
)

// TagEditor accumulates tags for a form until it is submitted.
type TagEditor struct {
	tags []string
}

// Confirm adds the trimmed input unless it is empty or already present.
func (e *TagEditor) Confirm(input string) {
	tag := strings.TrimSpace(input)
	if tag == "" || slices.Contains(e.tags, tag) {
		return
	}
	e.tags = append(e.tags, tag)
}

// Remove drops tag by exact match.
func (e *TagEditor) Remove(tag string) {
	e.tags = slices.DeleteFunc(e.tags, func(t string) bool { return t == tag })
}

func (e *TagEditor) Tags() []string {
	return slices.Clone(e.tags)
}

// KeyForm is the pending state of a create or edit form.
type KeyForm struct {
	Name        string
	Type        models.KeyType
	Description string
	Value       string
	URL         string
	Username    string
	ExpiresAt   *time.Time
	Tags        TagEditor

	submitting atomic.Bool
}

// NewKeyForm returns an empty form with the default type selected.
func NewKeyForm() *KeyForm {
	return &KeyForm{Type: models.KeyTypePassword}
}

// EditForm prefills a form from an existing key.
func EditForm(k *models.SecurityKey) *KeyForm {
	in := k.Input()
	f := &KeyForm{
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		Value:       in.Value,
		URL:         in.URL,
		Username:    in.Username,
		ExpiresAt:   in.ExpiresAt,
	}
	f.Tags.tags = in.Tags
	return f
}

// Input returns the full editable field set.
func (f *KeyForm) Input() models.KeyInput {
	return models.KeyInput{
		Name:        f.Name,
		Type:        f.Type,
		Description: f.Description,
		Value:       f.Value,
		URL:         f.URL,
		Username:    f.Username,
		Tags:        f.Tags.Tags(),
		ExpiresAt:   f.ExpiresAt,
	}
}

// Submitting reports whether a submit is pending.
func (f *KeyForm) Submitting() bool {
	return f.submitting.Load()
}

func (f *KeyForm) begin() bool {
	return f.submitting.CompareAndSwap(false, true)
}

func (f *KeyForm) end() {
	f.submitting.Store(false)
}
