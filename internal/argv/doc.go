// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package argv splits a command line into an argument vector.
//
// Tokens are separated by any of the bytes in Delimiters. There is no quoting,
// escaping or expansion: every maximal run of non-delimiter bytes is one token.
// Each token is an independent string, so the vector never aliases a buffer that
// may be reused for the next line.
//
// The vector keeps an explicit capacity that starts at a fixed chunk and grows by
// the same chunk when the token count reaches it. The slot just past the last
// token is the sentinel: At(Len()) always reports that no token is present.
package argv
