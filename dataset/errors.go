// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrEmptyFile indicates a source without any data record.
	ErrEmptyFile = errors.New("dataset: no data records")

	// ErrParse indicates a malformed record or field.
	ErrParse = errors.New("dataset: parse error")
)
