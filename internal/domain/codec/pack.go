package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// packer acumula el cuerpo binario de la factura. Los errores se difieren:
// la escritura en bytes.Buffer no falla, así que el único punto de error real
// es la validación previa en EncodeInvoice.
type packer struct {
	buf bytes.Buffer
}

func (p *packer) writeByte(b byte) {
	p.buf.WriteByte(b)
}

func (p *packer) writeUvarint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	p.buf.Write(tmp[:n])
}

func (p *packer) writeRaw(b []byte) {
	p.buf.Write(b)
}

// writeText escribe un bloque de texto con cabecera uvarint:
// (longitud<<1)|bitComprimido, seguida de los bytes (comprimidos con DEFLATE
// solo si achican, ver compressText).
func (p *packer) writeText(s string) {
	data := []byte(s)
	packed, compressed := compressText(data)
	header := uint64(len(packed)) << 1
	if compressed {
		header |= 1
	}
	p.writeUvarint(header)
	p.buf.Write(packed)
}

func (p *packer) bytes() []byte { return p.buf.Bytes() }

// unpacker recorre un cuerpo binario con chequeo de cotas en cada lectura.
// Cualquier lectura fuera de rango significa cuerpo truncado o corrupto.
type unpacker struct {
	data []byte
	pos  int
}

func (u *unpacker) readByte() (byte, error) {
	if u.pos >= len(u.data) {
		return 0, fmt.Errorf("cuerpo truncado en offset %d", u.pos)
	}
	b := u.data[u.pos]
	u.pos++
	return b, nil
}

func (u *unpacker) readUvarint() (uint64, error) {
	v, n := binary.Uvarint(u.data[u.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("uvarint inválido en offset %d", u.pos)
	}
	u.pos += n
	return v, nil
}

func (u *unpacker) readRaw(n int) ([]byte, error) {
	if n < 0 || u.pos+n > len(u.data) {
		return nil, fmt.Errorf("cuerpo truncado: faltan %d bytes en offset %d", n, u.pos)
	}
	b := u.data[u.pos : u.pos+n]
	u.pos += n
	return b, nil
}

// readText lee un bloque de texto escrito por writeText. maxLen acota tanto
// el bloque en el alambre como el texto descomprimido (viene de la tabla de
// límites de entity; ver limits.go).
func (u *unpacker) readText(maxLen int) (string, error) {
	header, err := u.readUvarint()
	if err != nil {
		return "", err
	}
	compressed := header&1 == 1
	length := int(header >> 1)
	if length > maxLen {
		return "", fmt.Errorf("bloque de texto de %d bytes excede la cota de %d", length, maxLen)
	}
	raw, err := u.readRaw(length)
	if err != nil {
		return "", err
	}
	if !compressed {
		return string(raw), nil
	}
	out, err := decompressText(raw, maxLen)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// readPlain lee un bloque de texto del formato v1: uvarint de longitud y
// bytes sin comprimir (v1 no comprimía texto).
func (u *unpacker) readPlain(maxLen int) (string, error) {
	length, err := u.readUvarint()
	if err != nil {
		return "", err
	}
	if int(length) > maxLen {
		return "", fmt.Errorf("bloque de texto de %d bytes excede la cota de %d", length, maxLen)
	}
	raw, err := u.readRaw(int(length))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// remaining indica cuántos bytes quedan sin consumir.
func (u *unpacker) remaining() int { return len(u.data) - u.pos }
