package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZipCode_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    ZipCode
		wantErr bool
	}{
		{name: "number", in: `2134`, want: 2134},
		{name: "numeric string", in: `"02134"`, want: 2134},
		{name: "padded string", in: `" 97331 "`, want: 97331},
		{name: "non numeric string", in: `"abcde"`, wantErr: true},
		{name: "boolean", in: `true`, wantErr: true},
		{name: "fraction", in: `1.5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var z ZipCode
			err := json.Unmarshal([]byte(tt.in), &z)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, z)
		})
	}
}

func TestZipCode_StringAndMarshal(t *testing.T) {
	z := ZipCode(2134)
	assert.Equal(t, "02134", z.String())

	b, err := json.Marshal(Business{ID: 1, ZipCode: z})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"zip_code":2134`)
}

func TestParseZipCode(t *testing.T) {
	z, err := ParseZipCode("00501")
	require.NoError(t, err)
	assert.Equal(t, ZipCode(501), z)

	_, err = ParseZipCode("123456")
	assert.Error(t, err)

	_, err = ParseZipCode("-1")
	assert.Error(t, err)
}
