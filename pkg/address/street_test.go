package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "github.com/codeprimate-software/cp-domain-sub001/pkg/domain-errors"
)

func TestNewStreet_Validation(t *testing.T) {
	tests := []struct {
		name       string
		number     int
		streetName string
		wantErr    bool
	}{
		{"valid", 100, "Main", false},
		{"trims the name", 100, "  Main  ", false},
		{"zero number", 0, "Main", true},
		{"negative number", -5, "Main", true},
		{"blank name", 100, "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStreet(tt.number, tt.streetName)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.number, s.Number())
			assert.Equal(t, "Main", s.Name())
		})
	}
}

func TestParseStreet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Street
	}{
		{"number and name", "100 Main", MustNewStreet(100, "Main")},
		{"with type", "100 Main St", MustNewStreet(100, "Main").WithType(StreetTypeStreet)},
		{"with dotted type", "100 Main St.", MustNewStreet(100, "Main").WithType(StreetTypeStreet)},
		{"with direction", "100 N Main St", MustNewStreet(100, "Main").WithDirection(North).WithType(StreetTypeStreet)},
		{
			"full word qualifiers",
			"4550 Northeast Football Boulevard",
			MustNewStreet(4550, "Football").WithDirection(Northeast).WithType(Boulevard),
		},
		{"multi-word name", "12 Martin Luther King Blvd", MustNewStreet(12, "Martin Luther King").WithType(Boulevard)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseStreet(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, s)
		})
	}
}

func TestParseStreet_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no leading number", "Main St"},
		{"negative number", "-4 Main St"},
		{"number only", "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStreet(tt.input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}

func TestStreet_String(t *testing.T) {
	s := MustNewStreet(100, "Main").WithDirection(North).WithType(StreetTypeStreet)
	assert.Equal(t, "100 N Main St", s.String())
	assert.Equal(t, "100 Main", MustNewStreet(100, "Main").String())
}

func TestStreet_StringParsesBack(t *testing.T) {
	s := MustNewStreet(4550, "Football").WithDirection(Northeast).WithType(Boulevard)
	parsed, err := ParseStreet(s.String())
	require.NoError(t, err)
	assert.Equal(t, s, parsed)
}

func TestParseStreetType_AllTokens(t *testing.T) {
	for token, want := range streetTypesByToken {
		got, err := ParseStreetType(token)
		require.NoError(t, err, token)
		assert.Equal(t, want, got, token)
	}
}
