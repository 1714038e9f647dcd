// errors.go: input-shape errors for the schema package
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package schema

import "errors"

// ErrArityMismatch is returned when a template's separator count does not
// match the number of parameters supplied to rejoin it. spec.md §4.6 leaves
// the choice between panicking and tolerating this open; this package
// surfaces it to the caller as an input-shape error (spec.md §7 kind 2)
// since a malformed template is a property of the input, not a violated
// internal invariant.
var ErrArityMismatch = errors.New("schema: template/parameter arity mismatch")
