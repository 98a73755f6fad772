package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_HTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindInvalidIdentifier, http.StatusBadRequest},
		{KindInvalidInput, http.StatusBadRequest},
		{KindSelfSubscription, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindConflict, http.StatusConflict},
		{KindTooManyRequests, http.StatusTooManyRequests},
		{KindInternal, http.StatusInternalServerError},
		{Kind("Unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
		})
	}
}

func TestError_IsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("services.graph.ListSubscribers: %w", NotFound("no subscriber found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "no subscriber found", MessageOf(err))
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal(cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "internal error", MessageOf(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestKindOf_UnknownError(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "internal error", MessageOf(err))
}

func TestSelfSubscription(t *testing.T) {
	err := SelfSubscription()

	assert.True(t, errors.Is(err, ErrSelfSubscription))
	assert.Equal(t, http.StatusBadRequest, KindOf(err).HTTPStatus())
}
