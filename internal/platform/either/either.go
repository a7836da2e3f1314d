// Copyright (c) 2026 Municipio. All rights reserved.

/*
Package either provides a generic disjoint-union result type.

An [Either] holds exactly one of two values: a Left (conventionally the
failure case) or a Right (the success case). It lets the service and storage
layers propagate typed domain errors through a pipeline without sentinel
values or panics, and forces the transport layer to handle both cases
exhaustively via [Fold].

Architecture:

  - Immutability: an Either never changes after construction.
  - No partial state: there is no "both" or "neither" value.
  - Pure data flow: none of the combinators have side effects.

Example:

	outcome := repo.Upsert(ctx, entity)
	response := either.Map(outcome, toSaveResponse)
*/
package either

// Either is a value of one of two possible types.
//
// The zero value is a Left holding L's zero value. Construct instances with
// [Left] or [Right] only.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either holding a failure value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right creates an Either holding a success value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft reports whether the Either holds a failure value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the Either holds a success value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the failure value. The boolean is false for a Right, in which
// case the returned L is the zero value and must not be used.
func (e Either[L, R]) Left() (L, bool) {
	if e.isRight {
		var zero L
		return zero, false
	}
	return e.left, true
}

// Right returns the success value. The boolean is false for a Left.
func (e Either[L, R]) Right() (R, bool) {
	if !e.isRight {
		var zero R
		return zero, false
	}
	return e.right, true
}

// # Combinators
//
// These are package-level functions rather than methods because Go methods
// cannot introduce new type parameters for the mapped value type.

// Map transforms the success value and passes a failure through unchanged.
//
// The mapper is never invoked on a Left.
func Map[L, R, T any](e Either[L, R], mapper func(R) T) Either[L, T] {
	if !e.isRight {
		return Left[L, T](e.left)
	}
	return Right[L](mapper(e.right))
}

// FlatMap chains an Either-producing function on success and passes a
// failure through unchanged.
//
// The mapper is never invoked on a Left.
func FlatMap[L, R, T any](e Either[L, R], mapper func(R) Either[L, T]) Either[L, T] {
	if !e.isRight {
		return Left[L, T](e.left)
	}
	return mapper(e.right)
}

// Fold reduces the Either to a single value by applying exactly one of the
// two functions. It is the exhaustive terminal operation.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if !e.isRight {
		return onLeft(e.left)
	}
	return onRight(e.right)
}
