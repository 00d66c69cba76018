package client

import "errors"

var (
	errNoServices = errors.New("client services are not provided")
	errNoUI       = errors.New("ui is not provided")
)
