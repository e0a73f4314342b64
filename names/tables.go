// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package names

import (
	"time"

	"cloudeng.io/calendars"
	"golang.org/x/text/language"
)

// nameSet holds the display names for one calendar in one language.
// Weekday names are indexed by calendars.Weekday and hence the entry
// at index 0 is unused.
type nameSet struct {
	eras          []string
	amPm          []string
	months        []string
	shortMonths   []string
	weekdays      []string
	shortWeekdays []string
}

// sundayFirst reorders a week listed from Saturday to the layout
// used for weekday names.
func sundayFirst(fromSaturday ...string) []string {
	return append([]string{"", fromSaturday[1], fromSaturday[2], fromSaturday[3],
		fromSaturday[4], fromSaturday[5], fromSaturday[6]}, fromSaturday[0])
}

var (
	englishEras = []string{"BC", "AD"}
	englishAMPM = []string{"AM", "PM"}

	englishWeekdays      = sundayFirst("Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday")
	englishShortWeekdays = sundayFirst("Sa", "Su", "Mo", "Tu", "We", "Th", "Fr")
)

func gregorianMonths() (long, short []string) {
	for m := time.January; m <= time.December; m++ {
		long = append(long, m.String())
		short = append(short, m.String()[:3])
	}
	return
}

var civilEnglish = func() *nameSet {
	long, short := gregorianMonths()
	return &nameSet{
		eras:          englishEras,
		amPm:          englishAMPM,
		months:        long,
		shortMonths:   short,
		weekdays:      sundayFirst("Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday"),
		shortWeekdays: sundayFirst("Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"),
	}
}()

var persianEnglish = &nameSet{
	eras:          englishEras,
	amPm:          englishAMPM,
	months:        []string{"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar", "Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand"},
	shortMonths:   []string{"Far", "Ord", "Kho", "Tir", "Mor", "Sha", "Meh", "Aba", "Aza", "Dey", "Bah", "Esf"},
	weekdays:      englishWeekdays,
	shortWeekdays: englishShortWeekdays,
}

var persianFarsi = &nameSet{
	eras:          []string{"قبل از میلاد", "بعد از میلاد"},
	amPm:          []string{"قبل از ظهر", "بعد از ظهر"},
	months:        []string{"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور", "مهر", "آبان", "آذر", "دی", "بهمن", "اسفند"},
	shortMonths:   []string{"فر", "ارد", "خرد", "تیر", "مر", "شهر", "مهر", "آب", "آذر", "دی", "به", "اس"},
	weekdays:      sundayFirst("شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه"),
	shortWeekdays: sundayFirst("ش", "ی", "د", "س", "چ", "پ", "ج"),
}

var hijriEnglish = &nameSet{
	eras:          englishEras,
	amPm:          englishAMPM,
	months:        []string{"Muharram", "Safar", "Rabiʿ al-Awwal", "Rabiʿ ath-Thani", "Jumada al-Ula", "Jumada al-Akhirah", "Rajab", "Sha'ban", "Ramadan", "Shawwal", "Dhu al-Qa'dah", "Dhu al-Hijjah"},
	shortMonths:   []string{"Muh", "Saf", "Ra1", "Ra2", "Ja1", "Ja2", "Raj", "Shb", "Ram", "Shw", "DQa", "DHj"},
	weekdays:      englishWeekdays,
	shortWeekdays: englishShortWeekdays,
}

var hijriArabic = &nameSet{
	eras:          []string{"قبل الميلاد", "بعد الميلاد"},
	amPm:          []string{"قبل الظهر", "بعد الظهر"},
	months:        []string{"محرم", "صفر", "ربيع الأول", "ربيع الثاني", "جمادى الأولى", "جمادى الآخرة", "رجب", "شعبان", "رمضان", "شوال", "ذو القعدة", "ذو الحجة"},
	shortMonths:   []string{"مح", "صف", "رب١", "رب٢", "جم١", "جم٢", "رج", "شع", "رم", "شو", "ذقع", "ذحج"},
	weekdays:      sundayFirst("السبت", "الأحد", "الإثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة"),
	shortWeekdays: sundayFirst("سب", "أح", "إث", "ثل", "أر", "خم", "جم"),
}

var japaneseEnglish = &nameSet{
	eras:          englishEras,
	amPm:          englishAMPM,
	months:        []string{"Ichigatsu", "Nigatsu", "Sangatsu", "Shigatsu", "Gogatsu", "Rokugatsu", "Shichigatsu", "Hachigatsu", "Kugatsu", "Jūgatsu", "Jūichigatsu", "Jūnigatsu"},
	shortMonths:   []string{"Ichi", "Ni", "San", "Shi", "Go", "Roku", "Shichi", "Hachi", "Ku", "Jū", "Jūichi", "Jūni"},
	weekdays:      englishWeekdays,
	shortWeekdays: englishShortWeekdays,
}

var japaneseJapanese = &nameSet{
	eras:          []string{"きげんぜん", "せいれき"},
	amPm:          []string{"ごぜん", "ごご"},
	months:        []string{"いち がつ", "に がつ", "さん がつ", "し がつ", "ご がつ", "ろく がつ", "しち がつ", "はち がつ", "く がつ", "じゅう がつ", "じゅういち がつ", "じゅうに がつ"},
	shortMonths:   []string{"一月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "十一月", "十二月"},
	weekdays:      sundayFirst("ど ようび", "にち ようび", "げつ ようび", "か ようび", "すい ようび", "もく ようび", "きん ようび"),
	shortWeekdays: sundayFirst("ど", "にち", "げつ", "か", "すい", "もく", "きん"),
}

// localized pairs the languages supported for a calendar with their names,
// English is always first and hence the fallback.
type localized struct {
	tags []language.Tag
	sets []*nameSet
}

func defaultTables() map[calendars.Kind]localized {
	return map[calendars.Kind]localized{
		calendars.Civil:    {[]language.Tag{language.English}, []*nameSet{civilEnglish}},
		calendars.Persian:  {[]language.Tag{language.English, language.Persian}, []*nameSet{persianEnglish, persianFarsi}},
		calendars.Hijri:    {[]language.Tag{language.English, language.Arabic}, []*nameSet{hijriEnglish, hijriArabic}},
		calendars.Japanese: {[]language.Tag{language.English, language.Japanese}, []*nameSet{japaneseEnglish, japaneseJapanese}},
	}
}
