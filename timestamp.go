package der

import (
	"reflect"
	"time"
)

// UTCTime represents the ASN.1 UTCTime type (Rec. ITU-T X.680, §47),
// restricted to the strict X.690 DER grammar: exactly 13 ASCII content
// octets `YYMMDDhhmmssZ`, UTC only, no fractional seconds, no local-offset
// forms (those are valid BER but not DER).
type UTCTime time.Time

// GeneralizedTime represents the ASN.1 GeneralizedTime type (Rec. ITU-T
// X.680, §46), restricted the same way: exactly 15 ASCII content octets
// `YYYYMMDDhhmmssZ`.
type GeneralizedTime time.Time

var (
	utcTimeType         = reflect.TypeFor[UTCTime]()
	generalizedTimeType = reflect.TypeFor[GeneralizedTime]()
)

// encodeUTCTime encodes v as the 13-byte content octets of a DER UTCTime.
func encodeUTCTime(v reflect.Value) ([]byte, error) {
	t := time.Time(v.Interface().(UTCTime)).UTC()
	year := t.Year()
	if year < 1950 || year >= 2050 {
		return nil, &MarshalError{Type: "der.UTCTime", Err: errKindError("UTCTime year must be in [1950, 2050)")}
	}
	b := make([]byte, 0, 13)
	b = appendDigits(b, year%100, 2)
	b = appendDigits(b, int(t.Month()), 2)
	b = appendDigits(b, t.Day(), 2)
	b = appendDigits(b, t.Hour(), 2)
	b = appendDigits(b, t.Minute(), 2)
	b = appendDigits(b, t.Second(), 2)
	b = append(b, 'Z')
	return b, nil
}

// decodeUTCTime decodes the content octets of a DER UTCTime into v,
// rejecting anything but the strict 13-byte `YYMMDDhhmmssZ` grammar. The
// two-digit year is expanded per RFC 5280: YY >= 50 means 1900+YY, otherwise
// 2000+YY.
func decodeUTCTime(v reflect.Value, tag Tag, content []byte) error {
	if len(content) != 13 || content[12] != 'Z' {
		return &SyntaxError{Kind: InvalidDateTime, Tag: tag, Err: errKindError("UTCTime must be exactly 13 bytes ending in Z")}
	}
	yy, ok := parseDigits(content[0:2])
	mm, ok2 := parseDigits(content[2:4])
	dd, ok3 := parseDigits(content[4:6])
	hh, ok4 := parseDigits(content[6:8])
	mi, ok5 := parseDigits(content[8:10])
	ss, ok6 := parseDigits(content[10:12])
	if !(ok && ok2 && ok3 && ok4 && ok5 && ok6) {
		return &SyntaxError{Kind: InvalidDateTime, Tag: tag, Err: errKindError("UTCTime contains non-digit characters")}
	}
	year := 1900 + yy
	if yy < 50 {
		year = 2000 + yy
	}
	if !validCalendarFields(year, mm, dd, hh, mi, ss) {
		return &SyntaxError{Kind: InvalidDateTime, Tag: tag, Err: errKindError("UTCTime does not name a valid calendar date/time")}
	}
	// time.Date normalizes sec=60 into the first second of the next minute,
	// which is exactly the instant a leap second names.
	t := time.Date(year, time.Month(mm), dd, hh, mi, ss, 0, time.UTC)
	v.Set(reflect.ValueOf(UTCTime(t)))
	return nil
}

// validCalendarFields reports whether mm/dd/hh/mi/ss name a real calendar
// date and time of day, with ss allowed up to 60 to accommodate a leap
// second (Rec. ITU-T X.680 permits it; Go's time.Time has no way to
// represent it distinctly from the following second, so it is normalized
// forward by time.Date rather than rejected).
func validCalendarFields(year, mm, dd, hh, mi, ss int) bool {
	if mm < 1 || mm > 12 {
		return false
	}
	if dd < 1 || dd > daysInMonth(year, mm) {
		return false
	}
	if hh < 0 || hh > 23 {
		return false
	}
	if mi < 0 || mi > 59 {
		return false
	}
	if ss < 0 || ss > 60 {
		return false
	}
	return true
}

// daysInMonth reports the number of days in the given 1-indexed month of
// year, accounting for leap years.
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// encodeGeneralizedTime encodes v as the 15-byte content octets of a DER
// GeneralizedTime.
func encodeGeneralizedTime(v reflect.Value) ([]byte, error) {
	t := time.Time(v.Interface().(GeneralizedTime)).UTC()
	if t.Nanosecond() != 0 {
		return nil, &MarshalError{Type: "der.GeneralizedTime", Err: errKindError("fractional seconds are not representable in DER GeneralizedTime")}
	}
	b := make([]byte, 0, 15)
	b = appendDigits(b, t.Year(), 4)
	b = appendDigits(b, int(t.Month()), 2)
	b = appendDigits(b, t.Day(), 2)
	b = appendDigits(b, t.Hour(), 2)
	b = appendDigits(b, t.Minute(), 2)
	b = appendDigits(b, t.Second(), 2)
	b = append(b, 'Z')
	return b, nil
}

// decodeGeneralizedTime decodes the content octets of a DER GeneralizedTime
// into v, rejecting anything but the strict 15-byte `YYYYMMDDhhmmssZ`
// grammar — no fractional seconds, no local-offset forms.
func decodeGeneralizedTime(v reflect.Value, tag Tag, content []byte) error {
	if len(content) != 15 || content[14] != 'Z' {
		return &SyntaxError{Kind: InvalidDateTime, Tag: tag, Err: errKindError("GeneralizedTime must be exactly 15 bytes ending in Z")}
	}
	year, ok := parseDigits(content[0:4])
	mm, ok2 := parseDigits(content[4:6])
	dd, ok3 := parseDigits(content[6:8])
	hh, ok4 := parseDigits(content[8:10])
	mi, ok5 := parseDigits(content[10:12])
	ss, ok6 := parseDigits(content[12:14])
	if !(ok && ok2 && ok3 && ok4 && ok5 && ok6) {
		return &SyntaxError{Kind: InvalidDateTime, Tag: tag, Err: errKindError("GeneralizedTime contains non-digit characters")}
	}
	if !validCalendarFields(year, mm, dd, hh, mi, ss) {
		return &SyntaxError{Kind: InvalidDateTime, Tag: tag, Err: errKindError("GeneralizedTime does not name a valid calendar date/time")}
	}
	t := time.Date(year, time.Month(mm), dd, hh, mi, ss, 0, time.UTC)
	v.Set(reflect.ValueOf(GeneralizedTime(t)))
	return nil
}

// appendDigits appends i, zero-padded to width digits, to dst.
func appendDigits(dst []byte, i, width int) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, width)...)
	for pos := len(dst) - 1; pos >= start; pos-- {
		dst[pos] = byte('0' + i%10)
		i /= 10
	}
	return dst
}

// parseDigits parses b as an unsigned decimal integer, reporting false if
// any byte of b is not an ASCII digit.
func parseDigits(b []byte) (int, bool) {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
