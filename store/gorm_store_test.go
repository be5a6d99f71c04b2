package store

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsSerializationFailure(t *testing.T) {
	serialization := &pgconn.PgError{Code: "40001"}
	deadlock := &pgconn.PgError{Code: "40P01"}
	duplicate := &pgconn.PgError{Code: "23505"}

	assert.True(t, isSerializationFailure(serialization))
	assert.True(t, isSerializationFailure(deadlock))
	assert.False(t, isSerializationFailure(duplicate))
	assert.False(t, isSerializationFailure(nil))
	assert.False(t, isSerializationFailure(gorm.ErrRecordNotFound))

	// Vẫn nhận diện được sau khi bị wrap qua các lớp của gorm
	wrapped := fmt.Errorf("query thất bại: %w", serialization)
	assert.True(t, isSerializationFailure(wrapped))
}

func TestTranslateError(t *testing.T) {
	assert.Nil(t, translateError(nil))
	assert.Equal(t, ErrNotFound, translateError(gorm.ErrRecordNotFound))
	assert.Equal(t, ErrDuplicate, translateError(gorm.ErrDuplicatedKey))

	other := fmt.Errorf("mất kết nối")
	assert.Equal(t, other, translateError(other))
}
