// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

// PrefixTag prepends "[Tag] " to the input. With Tag set to "logger"
// this is the original "logger" plugin; the type is kept general so a
// pipeline can mount more than one differently tagged instance.
// Grounded on original_source/plugins/logger.c.
type PrefixTag struct {
	Tag string
}

func (p PrefixTag) Name() string {
	if p.Tag != "" {
		return p.Tag
	}
	return "logger"
}

func (p PrefixTag) Transform(s string) (string, bool) {
	return "[" + p.Name() + "] " + s, true
}
