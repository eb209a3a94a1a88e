package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KamilKvasnicka/player-wallet/pkg/database"
)

func TestNewPgxPool_EmptyURL(t *testing.T) {
	pool, err := database.NewPgxPool(context.Background(), "", true)

	assert.Error(t, err)
	assert.Nil(t, pool)
}

func TestNewPgxPool_InvalidURL(t *testing.T) {
	pool, err := database.NewPgxPool(context.Background(), "://not-a-url", false)

	assert.Error(t, err)
	assert.Nil(t, pool)
}
