package domain

import "errors"

type Kind int

const (
	KindStore Kind = iota
	KindConstraintViolation
	KindInvalidAction
	KindNotFound
	KindMissingReference
	KindAssignmentConflict
)

func (k Kind) String() string {
	switch k {
	case KindConstraintViolation:
		return "ConstraintViolation"
	case KindInvalidAction:
		return "InvalidAction"
	case KindNotFound:
		return "NotFound"
	case KindMissingReference:
		return "MissingReference"
	case KindAssignmentConflict:
		return "AssignmentConflict"
	default:
		return "Store"
	}
}

// Error carries a Kind plus the message returned to the caller. Err holds the
// underlying store error, if any.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so callers can test against the
// sentinels below regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrConstraintViolation = &Error{Kind: KindConstraintViolation}
	ErrInvalidAction       = &Error{Kind: KindInvalidAction, Msg: "Acció no vàlida. Utilitza 'historic' o 'restaurar'."}
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrMissingReference    = &Error{Kind: KindMissingReference, Msg: "Falten IDs d'usuari i recurs."}
	ErrAssignmentConflict  = &Error{Kind: KindAssignmentConflict}
)

// KindOf reports the Kind of err, KindStore for foreign errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStore
}

func ConstraintViolation(err error) error {
	return &Error{Kind: KindConstraintViolation, Err: err}
}

func AssignmentConflict(err error) error {
	return &Error{
		Kind: KindAssignmentConflict,
		Msg:  "Error d'assignació (potser la relació ja existeix): " + err.Error(),
		Err:  err,
	}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}
