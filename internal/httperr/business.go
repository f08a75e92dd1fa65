package httperr

import "errors"

// ErrForbidden renders as 403.
var ErrForbidden = errors.New("forbidden")

// BusinessError rejects a request before it reaches the engine, e.g. a
// malformed date. It renders as 400 with Code.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
