// Copyright (c) 2026 Municipio. All rights reserved.

package either_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civita/municipio/internal/platform/either"
)

/*
TestEither_ExactlyOneSide verifies that every Either is either a Left or a
Right, never both, and that only the matching extractor is populated.
*/
func TestEither_ExactlyOneSide(t *testing.T) {
	t.Run("left", func(t *testing.T) {
		failure := errors.New("boom")
		e := either.Left[error, int](failure)

		assert.True(t, e.IsLeft())
		assert.False(t, e.IsRight())

		left, ok := e.Left()
		require.True(t, ok)
		assert.Equal(t, failure, left)

		right, ok := e.Right()
		assert.False(t, ok)
		assert.Zero(t, right)
	})

	t.Run("right", func(t *testing.T) {
		e := either.Right[error](42)

		assert.False(t, e.IsLeft())
		assert.True(t, e.IsRight())

		right, ok := e.Right()
		require.True(t, ok)
		assert.Equal(t, 42, right)

		left, ok := e.Left()
		assert.False(t, ok)
		assert.Nil(t, left)
	})
}

/*
TestEither_Map verifies that Map transforms a Right and passes a Left
through unchanged without ever invoking the mapper.
*/
func TestEither_Map(t *testing.T) {
	t.Run("transforms_right", func(t *testing.T) {
		e := either.Right[error](10)

		mapped := either.Map(e, func(value int) string {
			return "ok"
		})

		right, ok := mapped.Right()
		require.True(t, ok)
		assert.Equal(t, "ok", right)
	})

	t.Run("passes_left_through_untouched", func(t *testing.T) {
		failure := errors.New("storage down")
		e := either.Left[error, int](failure)

		invoked := false
		mapped := either.Map(e, func(value int) string {
			invoked = true
			return "never"
		})

		assert.False(t, invoked)

		left, ok := mapped.Left()
		require.True(t, ok)
		assert.Same(t, failure, left)
	})
}

/*
TestEither_FlatMap verifies chaining on a Right and short-circuiting on a Left.
*/
func TestEither_FlatMap(t *testing.T) {
	t.Run("chains_on_right", func(t *testing.T) {
		e := either.Right[error](7)

		chained := either.FlatMap(e, func(value int) either.Either[error, int] {
			if value > 5 {
				return either.Right[error](value * 2)
			}
			return either.Left[error, int](errors.New("too small"))
		})

		right, ok := chained.Right()
		require.True(t, ok)
		assert.Equal(t, 14, right)
	})

	t.Run("chain_can_fail", func(t *testing.T) {
		e := either.Right[error](1)

		chained := either.FlatMap(e, func(value int) either.Either[error, int] {
			return either.Left[error, int](errors.New("too small"))
		})

		assert.True(t, chained.IsLeft())
	})

	t.Run("passes_left_through_untouched", func(t *testing.T) {
		failure := errors.New("boom")
		e := either.Left[error, int](failure)

		invoked := false
		chained := either.FlatMap(e, func(value int) either.Either[error, string] {
			invoked = true
			return either.Right[error]("never")
		})

		assert.False(t, invoked)

		left, ok := chained.Left()
		require.True(t, ok)
		assert.Same(t, failure, left)
	})
}

/*
TestEither_Fold verifies that exactly one branch runs and that its return
value is the fold result.
*/
func TestEither_Fold(t *testing.T) {
	tests := []struct {
		name       string
		input      either.Either[error, int]
		wantResult string
		wantLeft   bool
	}{
		{"folds_left", either.Left[error, int](errors.New("x")), "left", true},
		{"folds_right", either.Right[error](3), "right", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leftCalls, rightCalls := 0, 0

			result := either.Fold(tt.input,
				func(error) string {
					leftCalls++
					return "left"
				},
				func(int) string {
					rightCalls++
					return "right"
				},
			)

			assert.Equal(t, tt.wantResult, result)
			assert.Equal(t, 1, leftCalls+rightCalls)
			if tt.wantLeft {
				assert.Equal(t, 1, leftCalls)
			} else {
				assert.Equal(t, 1, rightCalls)
			}
		})
	}
}
