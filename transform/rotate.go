// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

// Rotate moves every byte one position to the right; the last byte
// wraps around to the front. Grounded on
// original_source/plugins/rotator.c.
type Rotate struct{}

func (Rotate) Name() string { return "rotator" }

func (Rotate) Transform(s string) (string, bool) {
	if len(s) <= 1 {
		return s, true
	}
	b := make([]byte, len(s))
	b[0] = s[len(s)-1]
	copy(b[1:], s[:len(s)-1])
	return string(b), true
}
