/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package relay

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/botobag/artemis-mongo/graphql"
)

const cursorPrefix = "arrayconnection:"

// OffsetToCursor creates the cursor string from an offset.
func OffsetToCursor(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte(cursorPrefix + strconv.Itoa(offset)))
}

// CursorToOffset extracts the offset from the cursor string.
func CursorToOffset(cursor string) (int, error) {
	decoded, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return 0, graphql.NewError("Invalid cursor "+strconv.Quote(cursor)+".", err, graphql.ErrKindCoercion)
	}

	s := string(decoded)
	if !strings.HasPrefix(s, cursorPrefix) {
		return 0, graphql.NewError("Invalid cursor "+strconv.Quote(cursor)+".", graphql.ErrKindCoercion)
	}

	offset, err := strconv.Atoi(s[len(cursorPrefix):])
	if err != nil {
		return 0, graphql.NewError("Invalid cursor "+strconv.Quote(cursor)+".", err, graphql.ErrKindCoercion)
	}

	return offset, nil
}

// OffsetWithDefault returns the offset encoded in cursor. When cursor is empty or cannot be
// decoded, defaultOffset is returned.
func OffsetWithDefault(cursor string, defaultOffset int) int {
	if len(cursor) == 0 {
		return defaultOffset
	}
	offset, err := CursorToOffset(cursor)
	if err != nil {
		return defaultOffset
	}
	return offset
}
