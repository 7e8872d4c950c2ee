package codec

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/factulink/internal/domain/entity"
)

// Flags de cabecera del formato v1 (congelado: solo lectura).
const (
	v1FlagTax byte = 1 << iota
	v1FlagDiscount
	v1FlagNotes
	v1FlagDueAt
)

// Flags por parte en v1: solo wallet (siempre 20 bytes crudos, v1
// normalizaba a minúscula) y dirección postal.
const (
	v1PflagWallet byte = 1 << iota
	v1PflagAddress
)

// unpackV1 lee el formato viejo y migra la factura al esquema corriente.
//
// Diferencias con v2: el id era siempre UUID crudo, no había tokenAddress ni
// email/phone/taxId por parte, los textos iban sin comprimir y —la diferencia
// de fondo— los rates eran ENTEROS en unidades atómicas (uvarint). La
// migración los divide por 10^decimals para dejarlos en unidades de
// presentación; lo mismo con tax/discount fijos (los porcentajes quedan tal
// cual). Por eso re-codificar una factura v1 produce bytes v2, no los
// originales: la ley de round-trip byte a byte aplica solo a la versión
// corriente.
func unpackV1(body []byte) (*entity.Invoice, error) {
	u := &unpacker{data: body}
	inv := &entity.Invoice{Version: entity.CurrentSchemaVersion}

	flags, err := u.readByte()
	if err != nil {
		return nil, err
	}

	raw, err := u.readRaw(16)
	if err != nil {
		return nil, fmt.Errorf("invoiceId: %w", err)
	}
	id, err := uuid.FromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("invoiceId: %w", err)
	}
	inv.InvoiceID = id.String()

	issuedAt, err := u.readUvarint()
	if err != nil {
		return nil, fmt.Errorf("issuedAt: %w", err)
	}
	inv.IssuedAt = int64(issuedAt)
	if flags&v1FlagDueAt != 0 {
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
	if inv.Currency, err = u.readPlain(entity.MaxCurrencyLen); err != nil {
		return nil, fmt.Errorf("currency: %w", err)
	}

	if err := unpackPartyV1(u, &inv.From); err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	if err := unpackPartyV1(u, &inv.Client); err != nil {
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
		if it.Description, err = u.readPlain(entity.MaxDescriptionLen); err != nil {
			return nil, fmt.Errorf("items[%d].description: %w", i, err)
		}
		qty, err := u.readPlain(entity.MaxRateLen)
		if err != nil {
			return nil, fmt.Errorf("items[%d].quantity: %w", i, err)
		}
		if it.Quantity, err = decimal.NewFromString(qty); err != nil {
			return nil, fmt.Errorf("items[%d].quantity %q: %w", i, qty, err)
		}
		atomic, err := u.readUvarint()
		if err != nil {
			return nil, fmt.Errorf("items[%d].rate: %w", i, err)
		}
		it.Rate = atomicToDisplay(atomic, inv.Decimals)
		inv.Items = append(inv.Items, it)
	}

	if flags&v1FlagTax != 0 {
		raw, err := u.readPlain(entity.MaxRateLen)
		if err != nil {
			return nil, fmt.Errorf("tax: %w", err)
		}
		if inv.Tax, err = migrateAdjustment(raw, inv.Decimals); err != nil {
			return nil, fmt.Errorf("tax: %w", err)
		}
	}
	if flags&v1FlagDiscount != 0 {
		raw, err := u.readPlain(entity.MaxRateLen)
		if err != nil {
			return nil, fmt.Errorf("discount: %w", err)
		}
		if inv.Discount, err = migrateAdjustment(raw, inv.Decimals); err != nil {
			return nil, fmt.Errorf("discount: %w", err)
		}
	}
	if flags&v1FlagNotes != 0 {
		if inv.Notes, err = u.readPlain(entity.MaxNotesLen); err != nil {
			return nil, fmt.Errorf("notes: %w", err)
		}
	}

	if u.remaining() != 0 {
		return nil, fmt.Errorf("%d bytes sobrantes tras el final del cuerpo", u.remaining())
	}
	return inv, nil
}

func unpackPartyV1(u *unpacker, party *entity.Party) error {
	flags, err := u.readByte()
	if err != nil {
		return err
	}
	if party.Name, err = u.readPlain(entity.MaxPartyNameLen); err != nil {
		return fmt.Errorf("name: %w", err)
	}
	if flags&v1PflagWallet != 0 {
		raw, err := u.readRaw(20)
		if err != nil {
			return fmt.Errorf("wallet: %w", err)
		}
		party.Wallet = "0x" + hex.EncodeToString(raw)
	}
	if flags&v1PflagAddress != 0 {
		if party.Address, err = u.readPlain(entity.MaxAddressLen); err != nil {
			return fmt.Errorf("address: %w", err)
		}
	}
	return nil
}

// atomicToDisplay convierte un entero atómico v1 a la cadena decimal en
// unidades de presentación que usa el esquema corriente.
func atomicToDisplay(atomic uint64, decimals uint8) string {
	d := decimal.NewFromBigInt(new(big.Int).SetUint64(atomic), -int32(decimals))
	return d.String()
}

// migrateAdjustment migra un tax/discount v1: los porcentajes quedan igual,
// los montos fijos (enteros atómicos en v1) pasan a presentación.
func migrateAdjustment(raw string, decimals uint8) (string, error) {
	if strings.HasSuffix(raw, "%") {
		return raw, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", fmt.Errorf("monto v1 %q inválido: %w", raw, err)
	}
	return d.Shift(-int32(decimals)).String(), nil
}
