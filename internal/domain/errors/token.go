package errors

import "net/http"

// TokenErrorKind is the closed set of reasons a bearer token can be rejected.
type TokenErrorKind int

const (
	InvalidSignature TokenErrorKind = iota + 1
	ExpiredToken
	MissingSubject
)

func (k TokenErrorKind) String() string {
	switch k {
	case InvalidSignature:
		return "invalid_signature"
	case ExpiredToken:
		return "expired_token"
	case MissingSubject:
		return "missing_subject"
	default:
		return "unknown"
	}
}

// TokenError reports why Validate refused a token. Every kind matches
// ErrInvalidToken under errors.Is.
type TokenError struct {
	Kind TokenErrorKind
}

// NewTokenError creates a TokenError of the given kind.
func NewTokenError(kind TokenErrorKind) *TokenError {
	return &TokenError{Kind: kind}
}

func (e *TokenError) Error() string {
	return "token rejected: " + e.Kind.String()
}

// Is makes TokenError interchangeable with ErrInvalidToken and with other
// TokenErrors of the same kind.
func (e *TokenError) Is(target error) bool {
	switch t := target.(type) {
	case *TokenError:
		return t.Kind == e.Kind
	case *BaseError:
		return t.errorCode == ErrInvalidToken.errorCode
	default:
		return false
	}
}

func (e *TokenError) HTTPCode() int {
	return http.StatusUnauthorized
}

func (e *TokenError) ErrorCode() string {
	switch e.Kind {
	case ExpiredToken:
		return "TOKEN_EXPIRED"
	case MissingSubject:
		return "TOKEN_MISSING_SUBJECT"
	default:
		return "TOKEN_INVALID_SIGNATURE"
	}
}

func (e *TokenError) Message() string {
	return ErrInvalidToken.Message()
}

func (e *TokenError) Details() string {
	return e.Kind.String()
}
