package locales

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnexpectedGender is returned for gender tokens outside the recognized set.
var ErrUnexpectedGender = errors.New("unexpected gender")

// Genders declaration.

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// genderTokens maps deterministic tokens to a gender. The tokens "0" and "9"
// and the empty token select a random gender instead.
var genderTokens = map[string]Gender{
	"1":      Male,
	"m":      Male,
	"male":   Male,
	"2":      Female,
	"f":      Female,
	"female": Female,
}

// ParseGender function maps a gender token to Male or Female.
// Tokens "0", "9" and the empty token yield a random choice of the two.
// The match is case-insensitive.
func ParseGender(token string) (Gender, error) {
	token = strings.ToLower(token)

	switch token {
	case "", "0", "9":
		if rand.Intn(2) == 0 {
			return Male, nil
		}

		return Female, nil
	}

	gender, ok := genderTokens[token]
	if !ok {
		return "", errors.WithMessagef(ErrUnexpectedGender,
			"gender must be one of %s", strings.Join(recognizedGenderTokens(), ", "))
	}

	return gender, nil
}

func recognizedGenderTokens() []string {
	tokens := []string{"0", "9"}
	for token := range genderTokens {
		tokens = append(tokens, token)
	}

	slices.Sort(tokens)

	return tokens
}
