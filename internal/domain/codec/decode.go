package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/factulink/internal/domain/entity"
)

// unpackFunc decodifica el cuerpo binario de una versión concreta y entrega
// la factura ya migrada al esquema corriente en memoria.
type unpackFunc func(body []byte) (*entity.Invoice, error)

// unpackers es el registro de versiones: el único lugar que conoce el mapeo
// prefijo → rutina de decodificación. Agregar una versión es agregar una
// entrada aquí y su función unpack, sin tocar a los llamadores.
var unpackers = map[byte]unpackFunc{
	prefixV1: unpackV1,
	prefixV2: unpackV2,
}

// DecodeInvoice decodifica una cadena producida por EncodeInvoice (de
// cualquier versión soportada). Para la versión corriente el round-trip es
// byte-idéntico; para versiones viejas la factura se migra al esquema
// corriente y re-codificarla emite la versión nueva, no los bytes viejos.
func DecodeInvoice(compressed string) (*entity.Invoice, error) {
	if len(compressed) < 2 {
		return nil, fmt.Errorf("codec: %w: cadena demasiado corta", ErrDecodeFailed)
	}
	unpack, ok := unpackers[compressed[0]]
	if !ok {
		return nil, fmt.Errorf("codec: %w: prefijo %q", ErrUnsupportedVersion, compressed[0])
	}
	body, err := base62Decode(compressed[1:])
	if err != nil {
		return nil, fmt.Errorf("codec: %w: %v", ErrDecodeFailed, err)
	}
	inv, err := unpack(body)
	if err != nil {
		return nil, fmt.Errorf("codec: %w: %v", ErrDecodeFailed, err)
	}
	return inv, nil
}

// unpackV2 lee el formato corriente (espejo exacto de EncodeInvoice).
func unpackV2(body []byte) (*entity.Invoice, error) {
	u := &unpacker{data: body}
	inv := &entity.Invoice{Version: entity.SchemaV2}

	flags, err := u.readByte()
	if err != nil {
		return nil, err
	}

	if flags&flagIDPacked != 0 {
		raw, err := u.readRaw(16)
		if err != nil {
			return nil, fmt.Errorf("invoiceId: %w", err)
		}
		id, err := uuid.FromBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("invoiceId: %w", err)
		}
		inv.InvoiceID = id.String()
	} else {
		if inv.InvoiceID, err = u.readText(entity.MaxInvoiceIDLen); err != nil {
			return nil, fmt.Errorf("invoiceId: %w", err)
		}
	}

	issuedAt, err := u.readUvarint()
	if err != nil {
		return nil, fmt.Errorf("issuedAt: %w", err)
	}
	inv.IssuedAt = int64(issuedAt)
	if flags&flagDueAt != 0 {
		dueAt, err := u.readUvarint()
		if err != nil {
			return nil, fmt.Errorf("dueAt: %w", err)
		}
		inv.DueAt = int64(dueAt)
	}
	if inv.NetworkID, err = u.readUvarint(); err != nil {
		return nil, fmt.Errorf("networkId: %w", err)
	}
	if inv.Decimals, err = u.readByte(); err != nil {
		return nil, fmt.Errorf("decimals: %w", err)
	}
	if inv.Currency, err = u.readText(entity.MaxCurrencyLen); err != nil {
		return nil, fmt.Errorf("currency: %w", err)
	}
	if flags&flagToken != 0 {
		if flags&flagTokenPacked != 0 {
			raw, err := u.readRaw(20)
			if err != nil {
				return nil, fmt.Errorf("tokenAddress: %w", err)
			}
			inv.TokenAddress = "0x" + hex.EncodeToString(raw)
		} else if inv.TokenAddress, err = u.readText(entity.MaxPartyNameLen); err != nil {
			return nil, fmt.Errorf("tokenAddress: %w", err)
		}
	}

	if err := unpackParty(u, &inv.From); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if err := unpackParty(u, &inv.Client); err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}

	count, err := u.readUvarint()
	if err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	if count == 0 || count > entity.MaxItems {
		return nil, fmt.Errorf("cantidad de ítems fuera de rango: %d", count)
	}
	inv.Items = make([]entity.LineItem, 0, count)
	for i := uint64(0); i < count; i++ {
		var it entity.LineItem
		if it.Description, err = u.readText(entity.MaxDescriptionLen); err != nil {
			return nil, fmt.Errorf("items[%d].description: %w", i, err)
		}
		qty, err := u.readText(entity.MaxRateLen)
		if err != nil {
			return nil, fmt.Errorf("items[%d].quantity: %w", i, err)
		}
		if it.Quantity, err = decimal.NewFromString(qty); err != nil {
			return nil, fmt.Errorf("items[%d].quantity %q: %w", i, qty, err)
		}
		if it.Rate, err = u.readText(entity.MaxRateLen); err != nil {
			return nil, fmt.Errorf("items[%d].rate: %w", i, err)
		}
		inv.Items = append(inv.Items, it)
	}

	if flags&flagTax != 0 {
		if inv.Tax, err = u.readText(entity.MaxRateLen); err != nil {
			return nil, fmt.Errorf("tax: %w", err)
		}
	}
	if flags&flagDiscount != 0 {
		if inv.Discount, err = u.readText(entity.MaxRateLen); err != nil {
			return nil, fmt.Errorf("discount: %w", err)
		}
	}
	if flags&flagNotes != 0 {
		if inv.Notes, err = u.readText(entity.MaxNotesLen); err != nil {
			return nil, fmt.Errorf("notes: %w", err)
		}
	}

	if u.remaining() != 0 {
		return nil, fmt.Errorf("%d bytes sobrantes tras el final del cuerpo", u.remaining())
	}
	return inv, nil
}

// unpackParty lee una parte v2 (espejo de packParty).
func unpackParty(u *unpacker, party *entity.Party) error {
	flags, err := u.readByte()
	if err != nil {
		return err
	}
	if party.Name, err = u.readText(entity.MaxPartyNameLen); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	if flags&pflagWallet != 0 {
		if flags&pflagWalletPacked != 0 {
			raw, err := u.readRaw(20)
			if err != nil {
				return fmt.Errorf("wallet: %w", err)
			}
			party.Wallet = "0x" + hex.EncodeToString(raw)
		} else if party.Wallet, err = u.readText(entity.MaxPartyNameLen); err != nil {
			return fmt.Errorf("wallet: %w", err)
		}
	}
	if flags&pflagEmail != 0 {
		if party.Email, err = u.readText(entity.MaxEmailLen); err != nil {
			return fmt.Errorf("email: %w", err)
		}
	}
	if flags&pflagAddress != 0 {
		if party.Address, err = u.readText(entity.MaxAddressLen); err != nil {
			return fmt.Errorf("address: %w", err)
		}
	}
	if flags&pflagPhone != 0 {
		if party.Phone, err = u.readText(entity.MaxPhoneLen); err != nil {
			return fmt.Errorf("phone: %w", err)
		}
	}
	if flags&pflagTaxID != 0 {
		if party.TaxID, err = u.readText(entity.MaxTaxIDLen); err != nil {
			return fmt.Errorf("taxId: %w", err)
		}
	}
	return nil
}
