package config

import "errors"

var ErrParsingConfig = errors.New("failed to parse config")
