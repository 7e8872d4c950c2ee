package codec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/factulink/internal/domain"
	"github.com/jhoicas/factulink/internal/domain/entity"
)

// Prefijos de versión del formato binario: una letra al frente de la cadena
// Base62. Son constantes de protocolo; cambiarlas rompe todos los enlaces ya
// compartidos.
const (
	prefixV1 byte = 'A'
	prefixV2 byte = 'B'

	// currentPrefix es el que emite EncodeInvoice.
	currentPrefix = prefixV2
)

// Flags de cabecera del cuerpo v2 (presencia de campos opcionales y modo de
// empaquetado del id y el token).
const (
	flagIDPacked byte = 1 << iota // invoiceId es UUID canónico: 16 bytes crudos
	flagDueAt
	flagToken
	flagTokenPacked // tokenAddress en hex minúscula: 20 bytes crudos
	flagTax
	flagDiscount
	flagNotes
)

// Flags por parte (from/client) en v2.
const (
	pflagWallet byte = 1 << iota
	pflagWalletPacked // wallet en hex minúscula: 20 bytes crudos
	pflagEmail
	pflagAddress
	pflagPhone
	pflagTaxID
)

// EncodeInvoice serializa la factura al formato binario corriente y devuelve
// la cadena prefijo+Base62 lista para el fragmento hash.
//
// Campos fijos en binario apretado (uvarint, bytes crudos, flags); textos
// libres con compresión selectiva. Determinista: la misma factura produce
// siempre la misma cadena — sin timestamps de codificación ni sales
// aleatorias, para que los tests reproduzcan bytes y las cachés funcionen.
//
// Asume entrada ya validada por la capa de esquema; aún así rechaza los
// pocos invariantes que rompen el formato (sin ítems, decimals fuera de
// rango) en lugar de emitir bytes que no se puedan decodificar.
func EncodeInvoice(inv *entity.Invoice) (string, error) {
	if inv == nil {
		return "", fmt.Errorf("codec: %w: factura nula", domain.ErrInvalidInput)
	}
	if len(inv.Items) == 0 {
		return "", fmt.Errorf("codec: %w: la factura no tiene ítems", domain.ErrInvalidInput)
	}
	if len(inv.Items) > entity.MaxItems {
		return "", fmt.Errorf("codec: %w: %d ítems exceden el máximo %d", domain.ErrInvalidInput, len(inv.Items), entity.MaxItems)
	}

	var p packer

	idPacked, idBytes := packedUUID(inv.InvoiceID)
	tokenPacked, tokenBytes := packedHexAddress(inv.TokenAddress)

	var flags byte
	if idPacked {
		flags |= flagIDPacked
	}
	if inv.DueAt > 0 {
		flags |= flagDueAt
	}
	if inv.TokenAddress != "" {
		flags |= flagToken
		if tokenPacked {
			flags |= flagTokenPacked
		}
	}
	if inv.Tax != "" {
		flags |= flagTax
	}
	if inv.Discount != "" {
		flags |= flagDiscount
	}
	if inv.Notes != "" {
		flags |= flagNotes
	}
	p.writeByte(flags)

	if idPacked {
		p.writeRaw(idBytes)
	} else {
		p.writeText(inv.InvoiceID)
	}
	p.writeUvarint(uint64(inv.IssuedAt))
	if flags&flagDueAt != 0 {
		p.writeUvarint(uint64(inv.DueAt))
	}
	p.writeUvarint(inv.NetworkID)
	p.writeByte(inv.Decimals)
	p.writeText(inv.Currency)
	if flags&flagToken != 0 {
		if tokenPacked {
			p.writeRaw(tokenBytes)
		} else {
			p.writeText(inv.TokenAddress)
		}
	}

	packParty(&p, &inv.From)
	packParty(&p, &inv.Client)

	p.writeUvarint(uint64(len(inv.Items)))
	for _, it := range inv.Items {
		p.writeText(it.Description)
		p.writeText(it.Quantity.String())
		p.writeText(it.Rate)
	}

	if flags&flagTax != 0 {
		p.writeText(inv.Tax)
	}
	if flags&flagDiscount != 0 {
		p.writeText(inv.Discount)
	}
	if flags&flagNotes != 0 {
		p.writeText(inv.Notes)
	}

	return string(currentPrefix) + base62Encode(p.bytes()), nil
}

// packParty escribe una parte con su byte de flags y sus campos opcionales
// en orden fijo.
func packParty(p *packer, party *entity.Party) {
	walletPacked, walletBytes := packedHexAddress(party.Wallet)

	var flags byte
	if party.Wallet != "" {
		flags |= pflagWallet
		if walletPacked {
			flags |= pflagWalletPacked
		}
	}
	if party.Email != "" {
		flags |= pflagEmail
	}
	if party.Address != "" {
		flags |= pflagAddress
	}
	if party.Phone != "" {
		flags |= pflagPhone
	}
	if party.TaxID != "" {
		flags |= pflagTaxID
	}
	p.writeByte(flags)
	p.writeText(party.Name)
	if flags&pflagWallet != 0 {
		if walletPacked {
			p.writeRaw(walletBytes)
		} else {
			p.writeText(party.Wallet)
		}
	}
	if flags&pflagEmail != 0 {
		p.writeText(party.Email)
	}
	if flags&pflagAddress != 0 {
		p.writeText(party.Address)
	}
	if flags&pflagPhone != 0 {
		p.writeText(party.Phone)
	}
	if flags&pflagTaxID != 0 {
		p.writeText(party.TaxID)
	}
}

// packedUUID devuelve los 16 bytes del UUID solo si id está en forma
// canónica (uuid.Parse acepta variantes con llaves o mayúsculas que al
// reconstruir no serían byte-idénticas; esas van como texto).
func packedUUID(id string) (bool, []byte) {
	u, err := uuid.Parse(id)
	if err != nil || u.String() != id {
		return false, nil
	}
	b := u[:]
	return true, b
}

// packedHexAddress devuelve los 20 bytes de una dirección 0x en hex
// minúscula. Una dirección con mayúsculas (checksum EIP-55) se guarda como
// texto para preservarla byte a byte.
func packedHexAddress(addr string) (bool, []byte) {
	if len(addr) != 42 || !strings.HasPrefix(addr, "0x") || strings.ToLower(addr) != addr {
		return false, nil
	}
	b, err := hex.DecodeString(addr[2:])
	if err != nil || len(b) != 20 {
		return false, nil
	}
	return true, b
}
