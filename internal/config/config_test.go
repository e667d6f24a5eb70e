package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, []string{"starSED", "galaxySED", "agnSED"}, cfg.Subdirs)
	assert.Equal(t, "text", cfg.Output)
	assert.Empty(t, cfg.Root)
	assert.Nil(t, cfg.Log.Timestamps)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name       string
		cfg        Config
		wantFields []string
	}{
		{
			name: "valid config",
			cfg:  Config{Root: "/lib", Subdirs: []string{"starSED"}, Output: "json"},
		},
		{
			name: "output is case insensitive",
			cfg:  Config{Output: "YAML"},
		},
		{
			name:       "unknown output",
			cfg:        Config{Output: "xml"},
			wantFields: []string{"output"},
		},
		{
			name:       "empty and absolute subdirs",
			cfg:        Config{Subdirs: []string{"starSED", " ", "/abs"}},
			wantFields: []string{"subdirs[1]", "subdirs[2]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			var fields []string
			for _, e := range verrs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestValidationErrorsEmpty(t *testing.T) {
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
	assert.Equal(t, "output: bad", (&ValidationError{Field: "output", Message: "bad"}).Error())
}
