package codec

import "errors"

// Errores del códec. Los tres mensajes son contrato de cara a los
// consumidores existentes del formato (la UI distingue por ellos qué mostrar
// al usuario); no traducirlos ni reformularlos.
var (
	// ErrUnsupportedVersion indica un prefijo de versión desconocido. Nunca
	// se intenta el parser de la versión corriente como fallback.
	ErrUnsupportedVersion = errors.New("unsupported schema version")

	// ErrDecodeFailed indica un cuerpo corrupto o truncado (URL editada a
	// mano, copy-paste incompleto, enlace viejo).
	ErrDecodeFailed = errors.New("decode failed")

	// ErrInvalidOGPreview indica una cadena OG con una cantidad de campos
	// fuera de rango o un campo de vencimiento que no es MMDD.
	ErrInvalidOGPreview = errors.New("Invalid OG preview format")
)
