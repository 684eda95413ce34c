package common

import "strconv"

// LuhnChecksum function calculates the Luhn check digit for number.
// number must consist of decimal digits; the result is a single digit string.
func LuhnChecksum(number string) string {
	var sum int

	digits := []byte(number)

	for i := range digits {
		digit := int(digits[len(digits)-1-i] - '0')

		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
	}

	return strconv.Itoa(sum * 9 % 10)
}
