package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"event_finder/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	testCases := []struct {
		name   string
		extra  []string
		input  string
		output string
	}{
		{
			name:   "password in either case",
			input:  `{"password":"abc123","Password":"abc123","name":"Event 001"}`,
			output: `{"password":"[MASKED]","Password":"[MASKED]","name":"Event 001"}`,
		},
		{
			name:   "tokens",
			input:  `{"accessToken":"eyJhbGciOi","refreshToken":"eyJhbGciOiJFUzI1NiIs","token":"123:ABC"}`,
			output: `{"accessToken":"[MASKED]","refreshToken":"[MASKED]","token":"[MASKED]"}`,
		},
		{
			name:   "sale buyer",
			input:  `{"ticketId":3,"price":"12.00","buyer":"123456"}`,
			output: `{"ticketId":3,"price":"12.00","buyer":"[MASKED]"}`,
		},
		{
			name:   "sale buyer with space",
			input:  `{"buyer": "shell", "eventId": 7}`,
			output: `{"buyer": "[MASKED]", "eventId": 7}`,
		},
		{
			name:   "headers",
			input:  "POST /v1/tickets/3/buy HTTP/1.1\r\nAuthorization: Bearer abc\r\nX-User-Id: 123456\r\n\r\n",
			output: "POST /v1/tickets/3/buy HTTP/1.1\r\nAuthorization: [MASKED]\r\nX-User-Id: [MASKED]\r\n\r\n",
		},
		{
			name:   "extra field",
			extra:  []string{"chatId"},
			input:  `{"chatId":"-100200300","email":"a@b.c"}`,
			output: `{"chatId":"[MASKED]","email":"[MASKED]"}`,
		},
		{
			name:   "nothing to mask",
			input:  `{"id":1,"tickets":[]}`,
			output: `{"id":1,"tickets":[]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			output := logx.NewSensitiveDataMasker(tc.extra...).Mask([]byte(tc.input))

			rq.Equal(tc.output, string(output))
		})
	}
}

func TestNopMasker(t *testing.T) {
	rq := require.New(t)

	input := []byte(`{"buyer":"123456"}`)

	rq.Equal(input, logx.NopMasker{}.Mask(input))
}
