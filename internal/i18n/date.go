package i18n

import (
	"strings"
	"time"
)

var bengaliMonths = [...]string{
	"জানু", "ফেব", "মার্চ", "এপ্রি", "মে", "জুন",
	"জুল", "আগ", "সেপ", "অক্টো", "নভে", "ডিসে",
}

var bengaliDigits = strings.NewReplacer(
	"0", "০", "1", "১", "2", "২", "3", "৩", "4", "৪",
	"5", "৫", "6", "৬", "7", "৭", "8", "৮", "9", "৯",
)

// FormatDate renders t as a short date with hour and minute in the locale's
// convention, e.g. "Oct 19, 2026, 03:04 PM" or "১৯ অক্টো, ২০২৬, ০৩:০৪ PM".
func FormatDate(l Locale, t time.Time) string {
	if l != Bengali {
		return t.Format("Jan 2, 2006, 03:04 PM")
	}
	s := t.Format("2 ") + bengaliMonths[t.Month()-1] + t.Format(", 2006, 03:04 PM")
	return bengaliDigits.Replace(s)
}
