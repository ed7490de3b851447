package utils

import (
	"math/rand"
	"strconv"
	"strings"
)

func IsValidLuhn(s string) bool {
	var sum int
	var alt bool

	for i := len(s) - 1; i >= 0; i-- {
		num, err := strconv.Atoi(string(s[i]))
		if err != nil || num < 0 || num > 9 {
			return false
		}

		if alt {
			num *= 2
			if num > 9 {
				num -= 9
			}
		}

		sum += num
		alt = !alt
	}

	return sum%10 == 0
}

// GenerateLuhnNumber produces a random digit string of the given length whose
// last digit is the Luhn check digit. Used for wallet display numbers.
func GenerateLuhnNumber(length int) string {
	if length < 2 {
		length = 2
	}

	var sb strings.Builder
	sb.Grow(length)

	sb.WriteByte(byte('1' + rand.Intn(9)))
	for i := 1; i < length-1; i++ {
		sb.WriteByte(byte('0' + rand.Intn(10)))
	}

	body := sb.String()
	sb.WriteByte(byte('0' + luhnCheckDigit(body)))
	return sb.String()
}

func luhnCheckDigit(body string) int {
	var sum int
	alt := true

	for i := len(body) - 1; i >= 0; i-- {
		num := int(body[i] - '0')
		if alt {
			num *= 2
			if num > 9 {
				num -= 9
			}
		}
		sum += num
		alt = !alt
	}

	return (10 - sum%10) % 10
}
