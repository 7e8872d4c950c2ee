// Package codec implementa el formato de alambre de FactuLink: la factura
// completa viaja dentro del fragmento hash de la URL, sin almacenamiento en
// servidor. Hay dos formatos, con propósitos distintos:
//
//   - Formato binario (EncodeInvoice/DecodeInvoice): prefijo de versión de
//     una letra + cuerpo Base62. Los campos de forma fija (timestamps, chain
//     id, decimals, flags) se empaquetan en binario (uvarint, bytes crudos);
//     los textos libres (nombres, notas, direcciones) se comprimen con
//     DEFLATE solo cuando comprimir achica. Empaquetado binario puro gana en
//     payloads estructurados pequeños; compresión general gana en texto
//     libre largo; el formato híbrido toma lo mejor de ambos. La
//     codificación es determinista: la misma factura produce siempre los
//     mismos bytes.
//
//   - Vista previa OG (EncodeOGPreview/DecodeOGPreview): texto plano con
//     campos separados por "_", legible a simple vista. Es el ÚNICO dato que
//     llega a un servidor (parámetro ?og= para el unfurl en redes sociales)
//     y se limita a una proyección mínima no sensible de la factura.
//
// Límite conocido del formato OG: el quinto campo se interpreta como fecha
// de vencimiento cuando coincide con ^\d{4}$ (MMDD). Un nombre de emisor de
// exactamente 4 dígitos (ej. "1234") es indistinguible de una fecha y se
// decodifica como due. Es una limitación heredada del esquema de
// delimitadores que se preserva tal cual por compatibilidad; no "corregirla"
// sin rediseñar el formato.
//
// El fragmento hash nunca se envía a un servidor; esa es la frontera de
// privacidad de todo el sistema. Ningún código de este paquete, ni de sus
// consumidores, debe tratar el fragmento como dato transmisible.
package codec
