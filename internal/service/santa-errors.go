package service

import (
	apperrors "github.com/sidjay999/Secretsanta/internal/errors"
)

func NotAuthorizedError() *apperrors.AppError {
	return apperrors.New(apperrors.CodeForbidden, "not authorized")
}

func InsufficientParticipantsError() *apperrors.AppError {
	return apperrors.New(apperrors.CodeInvalidInput,
		"at least 2 unique participants are required for Secret Santa")
}

func MissingFieldsError() *apperrors.AppError {
	return apperrors.New(apperrors.CodeInvalidInput, "missing fields")
}

func GroupNotFoundError() *apperrors.AppError {
	return apperrors.New(apperrors.CodeNotFound, "group not found")
}

func MemberNotFoundError() *apperrors.AppError {
	return apperrors.New(apperrors.CodeNotFound, "member not found")
}

func InvalidCodeError() *apperrors.AppError {
	return apperrors.New(apperrors.CodeUnauthorized, "invalid code")
}

func AssignmentNotReadyError() *apperrors.AppError {
	return apperrors.New(apperrors.CodeConflict, "assignment not ready yet")
}
