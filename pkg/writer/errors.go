package writer

import "errors"

var ErrInvalidHTTPStatusCode = errors.New("HTTP status code was not valid")
