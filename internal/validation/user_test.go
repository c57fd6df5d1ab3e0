package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"simple", "luke", false},
		{"short", "r2", false},
		{"with separators", "han.solo_1-x", false},
		{"empty", "", true},
		{"spaces", "luke skywalker", true},
		{"too long", strings.Repeat("a", 121), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("luke@x.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("luke"))
	assert.Error(t, ValidateEmail("luke@x"))
	assert.Error(t, ValidateEmail(strings.Repeat("a", 115)+"@x.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("p"))
	assert.Error(t, ValidatePassword(""))
	assert.NoError(t, ValidatePassword(strings.Repeat("a", 72)))
	assert.Error(t, ValidatePassword(strings.Repeat("a", 73)))
	// multi-byte runes count by byte
	assert.Error(t, ValidatePassword(strings.Repeat("é", 37)))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "luke@x.com", NormalizeEmail("  Luke@X.com "))
}

func TestValidateCatalog(t *testing.T) {
	assert.NoError(t, ValidateCatalogName("Tatooine"))
	assert.Error(t, ValidateCatalogName("   "))
	assert.NoError(t, ValidateCatalogField("climate", "arid"))
	assert.Error(t, ValidateCatalogField("climate", strings.Repeat("x", 101)))
}
