package services

import (
	"testing"

	"github.com/dmitrijs2005/securevault/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func names(keys []*models.SecurityKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.Name
	}
	return out
}

func TestFilterKeys(t *testing.T) {
	keys := []*models.SecurityKey{
		{Name: "GitHub Token", Type: models.KeyTypeAPIKey},
		{Name: "Bank", Type: models.KeyTypePassword, Description: "Online banking"},
		{Name: "Laptop", Type: models.KeyTypePasskey},
	}

	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"GitHub Token", "Bank", "Laptop"}},
		{"github", []string{"GitHub Token"}},
		{"ghtok", []string{"GitHub Token"}},
		{"BANKING", []string{"Bank"}},
		{"passkey", []string{"Laptop"}},
		{"api", []string{"GitHub Token"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, names(FilterKeys(keys, tt.term)))
		})
	}
}
