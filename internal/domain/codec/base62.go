package codec

import (
	"fmt"
	"math/big"
)

// Alfabeto Base62 en orden ASCII: dígitos, mayúsculas, minúsculas. Todos los
// caracteres son seguros en un fragmento de URL sin escape.
const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var base62Index = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(base62Alphabet); i++ {
		idx[base62Alphabet[i]] = int8(i)
	}
	return idx
}()

var big62 = big.NewInt(62)

// base62Encode codifica data como entero grande en base 62. Los bytes cero
// iniciales se preservan como '0' iniciales (si no, "0x00 0x01" y "0x01"
// producirían la misma cadena y el round-trip se rompería).
func base62Encode(data []byte) string {
	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}
	out := make([]byte, 0, zeros+(len(data)-zeros)*3/2+1)
	for i := 0; i < zeros; i++ {
		out = append(out, base62Alphabet[0])
	}
	if zeros == len(data) {
		return string(out)
	}

	n := new(big.Int).SetBytes(data[zeros:])
	mod := new(big.Int)
	var digits []byte
	for n.Sign() > 0 {
		n.DivMod(n, big62, mod)
		digits = append(digits, base62Alphabet[mod.Int64()])
	}
	// Los dígitos salen del menos al más significativo.
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

// base62Decode invierte base62Encode. Un carácter fuera del alfabeto produce
// error (el llamador lo envuelve en ErrDecodeFailed).
func base62Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == base62Alphabet[0] {
		zeros++
	}
	n := new(big.Int)
	for i := zeros; i < len(s); i++ {
		d := base62Index[s[i]]
		if d < 0 {
			return nil, fmt.Errorf("carácter %q fuera del alfabeto base62 en posición %d", s[i], i)
		}
		n.Mul(n, big62)
		n.Add(n, big.NewInt(int64(d)))
	}
	body := n.Bytes()
	out := make([]byte, zeros+len(body))
	copy(out[zeros:], body)
	return out, nil
}
