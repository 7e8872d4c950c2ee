package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase62_RoundTrip(t *testing.T) {
	cases := [][]byte{
		{0x01},
		{0xFF},
		{0x01, 0x02, 0x03, 0x04},
		bytes.Repeat([]byte{0xAA}, 64),
		[]byte("hola mundo"),
	}
	for _, data := range cases {
		decoded, err := base62Decode(base62Encode(data))
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	}
}

func TestBase62_CerosIniciales(t *testing.T) {
	// Sin preservar ceros, estos dos producirían la misma cadena.
	conCero := []byte{0x00, 0x01}
	sinCero := []byte{0x01}

	encConCero := base62Encode(conCero)
	encSinCero := base62Encode(sinCero)
	assert.NotEqual(t, encConCero, encSinCero)
	assert.True(t, strings.HasPrefix(encConCero, "0"))

	decoded, err := base62Decode(encConCero)
	require.NoError(t, err)
	assert.Equal(t, conCero, decoded)
}

func TestBase62_TodoCeros(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00}
	encoded := base62Encode(data)
	assert.Equal(t, "000", encoded)

	decoded, err := base62Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestBase62_Vacio(t *testing.T) {
	assert.Empty(t, base62Encode(nil))
	decoded, err := base62Decode("")
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestBase62_CaracterInvalido(t *testing.T) {
	for _, s := range []string{"abc!def", "abc-def", "abc_def", "abc def"} {
		_, err := base62Decode(s)
		assert.Error(t, err, "cadena %q debe rechazarse", s)
	}
}

func TestBase62_SoloAlfabetoURLSafe(t *testing.T) {
	encoded := base62Encode([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x42})
	for i := 0; i < len(encoded); i++ {
		assert.GreaterOrEqual(t, base62Index[encoded[i]], int8(0),
			"carácter %q fuera del alfabeto", encoded[i])
	}
}
