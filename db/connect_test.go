package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnect(t *testing.T) {
	tests := []struct {
		name string
		uri  string
	}{
		{name: "malformed uri", uri: "not-a-mongo-uri"},
		{name: "empty uri", uri: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := Connect(context.Background(), tt.uri)
			assert.Error(t, err)
			assert.Nil(t, client)
		})
	}
}
