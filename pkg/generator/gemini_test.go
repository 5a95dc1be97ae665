package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("APIキーなしでは通信せずにエラーを返すのだ", func(t *testing.T) {
		_, err := NewClient(context.Background(), "")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}
