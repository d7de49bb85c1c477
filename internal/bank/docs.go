package bank

import (
	"fmt"
	"strconv"

	"github.com/Rana718/fakebank/internal/synth"
)

// checkLetters maps body mod 23 to the DNI/NIE control letter.
const checkLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

const (
	nieLetters = "XYZ"
	alnum      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	passportLen = 9
	otherLen    = 8
)

// CheckLetter returns the control letter for a numeric document body.
func CheckLetter(body int) byte {
	return checkLetters[body%23]
}

// DocCode synthesizes a document code whose format matches t.
func DocCode(src *synth.Source, t DocType) string {
	switch t {
	case DocDNI:
		body := src.IntN(100_000_000)
		return fmt.Sprintf("%08d%c", body, CheckLetter(body))
	case DocNIE:
		prefix := src.IntN(len(nieLetters))
		digits := src.IntN(10_000_000)
		return fmt.Sprintf("%c%07d%c", nieLetters[prefix], digits, CheckLetter(prefix*10_000_000+digits))
	case DocPassport:
		return randomCode(src, passportLen)
	default:
		return randomCode(src, otherLen)
	}
}

func randomCode(src *synth.Source, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alnum[src.IntN(len(alnum))]
	}
	return string(b)
}

// ValidateDocCode checks code against the format of t.
func ValidateDocCode(t DocType, code string) error {
	switch t {
	case DocDNI:
		if len(code) != 9 {
			return fmt.Errorf("DNI %q: want 9 characters", code)
		}
		body, err := strconv.Atoi(code[:8])
		if err != nil {
			return fmt.Errorf("DNI %q: non-numeric body", code)
		}
		if code[8] != CheckLetter(body) {
			return fmt.Errorf("DNI %q: check letter %c, want %c", code, code[8], CheckLetter(body))
		}
	case DocNIE:
		if len(code) != 9 {
			return fmt.Errorf("NIE %q: want 9 characters", code)
		}
		prefix := -1
		for i := 0; i < len(nieLetters); i++ {
			if code[0] == nieLetters[i] {
				prefix = i
			}
		}
		if prefix < 0 {
			return fmt.Errorf("NIE %q: prefix must be one of %s", code, nieLetters)
		}
		digits, err := strconv.Atoi(code[1:8])
		if err != nil {
			return fmt.Errorf("NIE %q: non-numeric body", code)
		}
		if want := CheckLetter(prefix*10_000_000 + digits); code[8] != want {
			return fmt.Errorf("NIE %q: check letter %c, want %c", code, code[8], want)
		}
	case DocPassport:
		return checkAlnum("PASSPORT", code, passportLen)
	case DocOther:
		return checkAlnum("OTHER", code, otherLen)
	default:
		return fmt.Errorf("unknown doc type %q", t)
	}
	return nil
}

func checkAlnum(kind, code string, n int) error {
	if len(code) != n {
		return fmt.Errorf("%s %q: want %d characters", kind, code, n)
	}
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !(c >= 'A' && c <= 'Z') && !(c >= '0' && c <= '9') {
			return fmt.Errorf("%s %q: invalid character %q", kind, code, c)
		}
	}
	return nil
}
