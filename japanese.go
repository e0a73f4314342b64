// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendars

// japaneseSystem implements the Japanese calendar which shares its
// arithmetic with the Civil calendar, the imperial eras are a display
// concern only, see the names package.
type japaneseSystem struct {
	civilSystem
}

func (japaneseSystem) Kind() Kind { return Japanese }
