// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the otpd config has
// no HTTP address, so no transport would be served.
var errNoHandlersAreCreated = errors.New("no handlers are created")
