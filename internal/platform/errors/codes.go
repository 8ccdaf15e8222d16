// Package errors provides structured domain errors with stable codes.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request / session errors
	CodeUnauthenticated  Code = "UNAUTHENTICATED"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInternal         Code = "INTERNAL"

	// Storage errors
	CodeNotFound             Code = "NOT_FOUND"
	CodeGameConcurrentUpdate Code = "GAME_CONCURRENT_UPDATE"

	// Character creation errors
	CodeGamePlayerNameEmpty     Code = "GAME_PLAYER_NAME_EMPTY"
	CodeGameScenarioUnknown     Code = "GAME_SCENARIO_UNKNOWN"
	CodeGameScenarioUnavailable Code = "GAME_SCENARIO_UNAVAILABLE"
	CodeAttributeOutOfRange     Code = "ATTRIBUTE_OUT_OF_RANGE"
	CodePositionOutOfRange      Code = "POSITION_OUT_OF_RANGE"

	// Turn errors
	CodeGameAlreadyEnded  Code = "GAME_ALREADY_ENDED"
	CodeDistanceExceeded  Code = "DISTANCE_EXCEEDED"
	CodeTurnActionInvalid Code = "TURN_ACTION_INVALID"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	// Bad request - validation failures and rejected turns
	case CodeValidationFailed,
		CodeGamePlayerNameEmpty,
		CodeGameScenarioUnknown,
		CodeGameScenarioUnavailable,
		CodeAttributeOutOfRange,
		CodePositionOutOfRange,
		CodeGameAlreadyEnded,
		CodeDistanceExceeded,
		CodeTurnActionInvalid:
		return http.StatusBadRequest

	case CodeUnauthenticated:
		return http.StatusUnauthorized

	case CodeNotFound:
		return http.StatusNotFound

	case CodeGameConcurrentUpdate:
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
