// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package names

import (
	"strconv"

	"cloudeng.io/calendars"
	"golang.org/x/text/language"
)

// ImperialEra represents a Japanese imperial era.
type ImperialEra struct {
	Name     string
	Japanese string
	// Start is the Gregorian date of the first day of the era.
	Start calendars.YMD
}

// ImperialEras lists the modern Japanese eras in chronological order.
var ImperialEras = []ImperialEra{
	{"Meiji", "明治", calendars.NewYMD(1868, 0, 1)},
	{"Taisho", "大正", calendars.NewYMD(1912, 6, 30)},
	{"Showa", "昭和", calendars.NewYMD(1926, 11, 25)},
	{"Heisei", "平成", calendars.NewYMD(1989, 0, 8)},
	{"Reiwa", "令和", calendars.NewYMD(2019, 4, 1)},
}

// JapaneseEra returns the imperial era and the year within that era for
// the specified Gregorian date. It returns false for dates before the
// Meiji era.
func JapaneseEra(date calendars.YMD) (ImperialEra, int, bool) {
	for i := len(ImperialEras) - 1; i >= 0; i-- {
		era := ImperialEras[i]
		if date.Compare(era.Start) >= 0 {
			return era, date.Year - era.Start.Year + 1, true
		}
	}
	return ImperialEra{}, 0, false
}

// JapaneseEraName returns the era name and year for date, eg. "Reiwa 6",
// or "令和6年" for a Japanese locale.
func (t *Table) JapaneseEraName(date calendars.YMD, locale language.Tag) (string, bool) {
	era, year, ok := JapaneseEra(date)
	if !ok {
		return "", false
	}
	if t.Language(calendars.Japanese, locale) == language.Japanese {
		return era.Japanese + strconv.Itoa(year) + "年", true
	}
	return era.Name + " " + strconv.Itoa(year), true
}
