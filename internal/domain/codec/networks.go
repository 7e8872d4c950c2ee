package codec

import (
	"strconv"
	"strings"
)

// Tabla chain id → código corto para la vista previa OG. Viene de la
// configuración compartida con la capa de UI; el orden no importa, el
// contenido sí (los códigos ya están en enlaces compartidos).
var networkCodes = map[uint64]string{
	1:     "eth",
	10:    "op",
	137:   "poly",
	42161: "arb",
}

// NetworkCode devuelve el código corto de la red, o el chain id en decimal
// si la red no está en la tabla (así un id desconocido sigue siendo legible
// en la vista previa).
func NetworkCode(networkID uint64) string {
	if code, ok := networkCodes[networkID]; ok {
		return code
	}
	return strconv.FormatUint(networkID, 10)
}

// NetworkIDFromCode hace la búsqueda inversa, insensible a mayúsculas.
// ok es false para códigos desconocidos; el llamador decide qué hacer.
func NetworkIDFromCode(code string) (uint64, bool) {
	needle := strings.ToLower(strings.TrimSpace(code))
	for id, c := range networkCodes {
		if c == needle {
			return id, true
		}
	}
	return 0, false
}
