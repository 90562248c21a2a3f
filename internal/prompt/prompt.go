// Package prompt builds the lyrics-generation instruction sent to the LLM.
package prompt

import (
	"fmt"
	"strings"

	"github.com/songwish/apiserver/types"
)

const template = `
Wish a happy birthday to %s.

Ensure that "Happy birthday" is mentioned at least twice in the lyrics, and it should rhyme. The lyrics should use simple, short, and easy to pronounce words as much as possible.

Using the above information, please write 16 lines of %s lyrics that I can dedicate to %s/%s birthday. Each line can have maximum of 8 words or 40 characters.

The lyrics generated should be completely unique and never written before every single time and should not in any way or manner infringe on any trademarks/copyrights or any other rights of any individual or entity anywhere in the world. Any references or similarity to existing lyrics of any song anywhere in the world needs to be completely avoided. Any mention of proper nouns i.e. names or places of any manner apart from the ones mentioned above needs to be completely avoided. The lyrics generated should not be insensitive or should not offend any person/ place/ caste/ religion/ creed/ tribe/ country/ gender/ government/ organisation or any entity or individual in any manner whatsoever. Any words which might be construed directly or indirectly as cuss words or are offensive in any language should also be completely avoided.
`

// Build produces the instruction text for a dedication. It is a pure
// function: identical inputs always yield identical output. Only the
// receiver name, genre and the gender-derived pronouns vary.
func Build(receiverName, genre, gender string) string {
	third, poss := pronouns(gender)
	return strings.TrimSpace(fmt.Sprintf(template, receiverName, genre, third, poss))
}

func pronouns(gender string) (third, possessive string) {
	switch gender {
	case types.GenderMale:
		return "him", "his"
	case types.GenderFemale:
		return "her", "her"
	default:
		return "them", "their"
	}
}
