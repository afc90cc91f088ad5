package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateKey(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		ctx     context.Context
		wantErr error
		name    string
		key     string
	}{
		{name: "document key", ctx: context.Background(), key: DocumentKey},
		{name: "canceled context is still valid", ctx: canceled, key: DocumentKey},
		{name: "nil context", ctx: nil, key: DocumentKey, wantErr: ErrNilContext},
		{name: "empty key", ctx: context.Background(), key: "", wantErr: ErrEmptyString},
		{name: "blank key", ctx: context.Background(), key: "  \t", wantErr: ErrEmptyString},
		{name: "slash", ctx: context.Background(), key: "a/b", wantErr: ErrInvalidKey},
		{name: "backslash", ctx: context.Background(), key: `a\b`, wantErr: ErrInvalidKey},
		{name: "dot", ctx: context.Background(), key: ".", wantErr: ErrInvalidKey},
		{name: "dot dot", ctx: context.Background(), key: "..", wantErr: ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateKey(tt.ctx, tt.key) //nolint:staticcheck // nil context is under test
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
