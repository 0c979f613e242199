package validators

import "strings"

// NormalizePhone padroniza números locais (05x...) para o formato
// internacional +972, igual ao fluxo de SMS do app cliente.
func NormalizePhone(phone string) string {
	p := strings.ReplaceAll(strings.TrimSpace(phone), "-", "")
	p = strings.ReplaceAll(p, " ", "")

	if strings.HasPrefix(p, "05") {
		return "+972" + p[1:]
	}
	return p
}

func IsPhoneValid(phone string) bool {
	p := NormalizePhone(phone)
	if !strings.HasPrefix(p, "+") || len(p) < 10 {
		return false
	}
	for _, r := range p[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
