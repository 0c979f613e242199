package timezone

import "time"

// A loja opera num único fuso; datas e horários circulam como strings
// locais (YYYY-MM-DD / HH:MM), sem conversão de timezone.
const DefaultTimezone = "Asia/Jerusalem"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}
