package logx

import (
	"regexp"
)

// Masker hides personal data in dumped requests and responses before they
// are logged.
type Masker interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var (
	defaultMaskedJSONFields = []string{"[Pp]assword", "accessToken", "refreshToken", "email", "buyer", "token"}
	defaultMaskedHeaders    = []string{"Authorization", "X-User-Id"}
)

type SensitiveDataMasker struct {
	patterns []*regexp.Regexp
}

// NewSensitiveDataMasker masks buyer identities, credentials and the caller
// header, plus any extra JSON fields given.
func NewSensitiveDataMasker(extraJSONFields ...string) SensitiveDataMasker {
	fields := append(append([]string{}, defaultMaskedJSONFields...), extraJSONFields...)

	patterns := make([]*regexp.Regexp, 0, len(fields)+len(defaultMaskedHeaders))
	for _, field := range fields {
		patterns = append(patterns, regexp.MustCompile(`(?s)("`+field+`":\s?").+?(")`))
	}
	for _, header := range defaultMaskedHeaders {
		patterns = append(patterns, regexp.MustCompile("(?s)("+header+": ).+?(\r)"))
	}

	return SensitiveDataMasker{patterns: patterns}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range s.patterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}

// NopMasker logs payloads unchanged.
type NopMasker struct{}

func (NopMasker) Mask(input []byte) []byte {
	return input
}
