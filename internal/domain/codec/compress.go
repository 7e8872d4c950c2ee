package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// compressMinLen es el umbral bajo el cual ni se intenta comprimir: el
// overhead de un stream DEFLATE supera cualquier ganancia en textos cortos.
const compressMinLen = 32

// compressText intenta comprimir data con DEFLATE crudo. Devuelve los bytes
// comprimidos y true solo si la compresión achica; en caso contrario devuelve
// data sin tocar y false. Con nivel fijo el resultado es determinista, que es
// lo que exige la ley de round-trip byte a byte.
func compressText(data []byte) ([]byte, bool) {
	if len(data) < compressMinLen {
		return data, false
	}
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return data, false
	}
	if _, err := w.Write(data); err != nil {
		return data, false
	}
	if err := w.Close(); err != nil {
		return data, false
	}
	if buf.Len() >= len(data) {
		return data, false
	}
	return buf.Bytes(), true
}

// decompressText descomprime un stream DEFLATE crudo con cota de salida
// maxLen (defensa contra cuerpos corruptos que inflen sin límite).
func decompressText(data []byte, maxLen int) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	out, err := io.ReadAll(io.LimitReader(r, int64(maxLen)+1))
	if err != nil {
		return nil, fmt.Errorf("descomprimir texto: %w", err)
	}
	if len(out) > maxLen {
		return nil, fmt.Errorf("texto descomprimido excede la cota de %d bytes", maxLen)
	}
	return out, nil
}
