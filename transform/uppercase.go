// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import "strings"

// Uppercase converts every character in the input to uppercase.
// Grounded on original_source/plugins/uppercaser.c.
type Uppercase struct{}

func (Uppercase) Name() string { return "uppercaser" }

func (Uppercase) Transform(s string) (string, bool) {
	return strings.ToUpper(s), true
}
