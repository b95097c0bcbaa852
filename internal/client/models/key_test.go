package models

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/securevault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyType_Valid(t *testing.T) {
	for _, kt := range KeyTypes {
		assert.True(t, kt.Valid(), kt)
	}
	assert.False(t, KeyType("ssh").Valid())
	assert.False(t, KeyType("").Valid())
}

func TestKeyType_Label(t *testing.T) {
	assert.Equal(t, "API Key", KeyTypeAPIKey.Label())
	assert.Equal(t, "custom", KeyType("custom").Label())
}

func TestKeyInput_Validate(t *testing.T) {
	ok := KeyInput{Name: "GitHub Token", Type: KeyTypeAPIKey, Value: "ghp_xxx"}

	tests := []struct {
		name  string
		mut   func(*KeyInput)
		field string
	}{
		{"valid", func(*KeyInput) {}, ""},
		{"blank name", func(in *KeyInput) { in.Name = "  " }, "name"},
		{"missing type", func(in *KeyInput) { in.Type = "" }, "type"},
		{"unknown type", func(in *KeyInput) { in.Type = "ssh" }, "type"},
		{"missing value", func(in *KeyInput) { in.Value = "" }, "value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := ok
			tt.mut(&in)
			err := in.Validate()
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}
}

func TestSecurityKey_CloneIsDeep(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	k := &SecurityKey{ID: "1", Tags: []string{"work"}, ExpiresAt: &exp}

	c := k.Clone()
	c.Tags[0] = "home"
	*c.ExpiresAt = exp.Add(time.Hour)

	assert.Equal(t, "work", k.Tags[0])
	assert.True(t, k.ExpiresAt.Equal(exp))
	assert.Nil(t, (*SecurityKey)(nil).Clone())
}

func TestSecurityKey_Expired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.False(t, (&SecurityKey{}).Expired(now))
	assert.True(t, (&SecurityKey{ExpiresAt: &past}).Expired(now))
	assert.False(t, (&SecurityKey{ExpiresAt: &future}).Expired(now))
}

func TestSecurityKey_Input(t *testing.T) {
	k := &SecurityKey{ID: "42", Name: "n", Type: KeyTypePassword, Value: "v", Tags: []string{"a"}}
	in := k.Input()
	in.Tags[0] = "b"
	assert.Equal(t, "n", in.Name)
	assert.Equal(t, "a", k.Tags[0])
}

func TestTagsFromString(t *testing.T) {
	tags, err := TagsFromString(" work, home ,work")
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "home"}, tags)

	tags, err = TagsFromString("")
	require.NoError(t, err)
	assert.Nil(t, tags)

	_, err = TagsFromString("a,,b")
	require.ErrorIs(t, err, ErrIncorrectTags)
}
