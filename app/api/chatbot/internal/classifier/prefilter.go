package classifier

import "regexp"

// invalidPatterns short-circuit messages that carry no classifiable
// content: bare greetings, farewells, thanks, yes/no, 1-2 character
// tokens, digits-only and symbols-only input. Order matters: the first
// match wins.
var invalidPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(hola|hi|hello|hey)$`),
	regexp.MustCompile(`^(adiós|bye|chao)$`),
	regexp.MustCompile(`^(gracias|thanks)$`),
	regexp.MustCompile(`^(sí|si|yes|no)$`),
	regexp.MustCompile(`^\w{1,2}$`),
	regexp.MustCompile(`^[0-9]+$`),
	regexp.MustCompile(`^[!@#$%^&*(),.?":{}|<>]+$`),
}

// shortCircuits reports whether the lowercased trimmed message matches a
// prefilter pattern.
func shortCircuits(clean string) bool {
	for _, p := range invalidPatterns {
		if p.MatchString(clean) {
			return true
		}
	}
	return false
}
