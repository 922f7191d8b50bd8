package literal

import "errors"

var ErrInteger = errors.New("bad integer literal")
