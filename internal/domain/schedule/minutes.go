package schedule

import "fmt"

// Horários circulam como "HH:MM"; internamente a aritmética de intervalos
// usa minutos desde a meia-noite.

func ParseHM(hm string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(hm, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	return h*60 + m, nil
}

func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
