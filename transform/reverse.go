// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

// Reverse reverses the order of bytes in the input.
// Grounded on original_source/plugins/flipper.c.
type Reverse struct{}

func (Reverse) Name() string { return "flipper" }

func (Reverse) Transform(s string) (string, bool) {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b), true
}
