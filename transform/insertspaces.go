// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import "strings"

// InsertSpaces inserts a single space between every pair of adjacent
// bytes in the input. Grounded on original_source/plugins/expander.c.
type InsertSpaces struct{}

func (InsertSpaces) Name() string { return "expander" }

func (InsertSpaces) Transform(s string) (string, bool) {
	if len(s) == 0 {
		return "", true
	}
	var b strings.Builder
	b.Grow(len(s)*2 - 1)
	for i := 0; i < len(s); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(s[i])
	}
	return b.String(), true
}
