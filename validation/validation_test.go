package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "uuid", value: "0b6e3c9a-1f5d-4c1e-9a53-7d2f4d7c8e11", wantErr: false},
		{name: "underscore", value: "session_1", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "slash", value: "../etc", wantErr: true},
		{name: "space", value: "a b", wantErr: true},
		{name: "too long", value: strings.Repeat("a", 101), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID("id", tt.value)
			if tt.wantErr {
				assert.Equal(t, codes.InvalidArgument, status.Code(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
