package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/bistro/internal/encoding"
)

func readAll(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "Date;Article;Quantité;Montant\n12/10/2026;Café;2;12,50\n"

	assert.Equal(t, input, readAll(t, []byte(input)))
}

func TestNewUTF8Reader_Latin1(t *testing.T) {
	// "Quantité;Payé\n" in Windows-1252, é = 0xE9
	latin1 := []byte{
		'Q', 'u', 'a', 'n', 't', 'i', 't', 0xE9, ';',
		'P', 'a', 'y', 0xE9, '\n',
	}

	assert.Equal(t, "Quantité;Payé\n", readAll(t, latin1))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Date;Montant\n")...)

	assert.Equal(t, "Date;Montant\n", readAll(t, input))
}

func TestNewUTF8Reader_RuneCutBySniffWindow(t *testing.T) {
	// 4095 ASCII bytes followed by "é" puts the rune across the 4096 byte window
	input := strings.Repeat("a", 4095) + "é\n"

	assert.Equal(t, input, readAll(t, []byte(input)))
}

func TestSeparator(t *testing.T) {
	type testCase struct {
		name   string
		sample string
		want   rune
	}

	tests := []testCase{
		{name: "Semicolon", sample: "Date;Article;Montant\n1;2;3", want: ';'},
		{name: "Comma", sample: "Date,Article,Amount\n", want: ','},
		{name: "Tab", sample: "Date\tArticle\tAmount", want: '\t'},
		{name: "QuotedCommasIgnored", sample: `"Date, jour";"Article, nom";Montant`, want: ';'},
		{name: "EmptyDefaultsToSemicolon", sample: "", want: ';'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encoding.Separator([]byte(tt.sample)))
		})
	}
}
