package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// unitRow es una fila útil del CSV de establecimientos del CNES.
type unitRow struct {
	CNES    int
	Name    string
	Address string
}

// columnas del export de DATASUS (tbEstabelecimento)
const (
	colCNES        = "CO_CNES"
	colFantasia    = "NO_FANTASIA"
	colRazaoSocial = "NO_RAZAO_SOCIAL"
	colLogradouro  = "NO_LOGRADOURO"
	colNumero      = "NU_ENDERECO"
	colBairro      = "NO_BAIRRO"
)

var errMissingColumn = errors.New("columna obligatoria ausente")

// parseUnits lee el CSV (ISO-8859-1, separado por ';') y devuelve las filas válidas.
// Las filas sin CNES numérico o sin nombre se omiten y se cuentan en skipped.
// Si un mismo nombre aparece varias veces gana la última fila.
func parseUnits(r io.Reader) (rows []unitRow, skipped int, err error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("leer cabecera: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToUpper(strings.Trim(strings.TrimSpace(h), "\ufeff\"ï»¿"))] = i
	}
	if _, ok := idx[colCNES]; !ok {
		return nil, 0, fmt.Errorf("%w: %s", errMissingColumn, colCNES)
	}
	_, hasFantasia := idx[colFantasia]
	_, hasRazao := idx[colRazaoSocial]
	if !hasFantasia && !hasRazao {
		return nil, 0, fmt.Errorf("%w: %s", errMissingColumn, colFantasia)
	}

	field := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	byName := make(map[string]int)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("leer fila: %w", err)
		}

		code, err := strconv.Atoi(field(rec, colCNES))
		if err != nil || code <= 0 {
			skipped++
			continue
		}
		name := field(rec, colFantasia)
		if name == "" {
			name = field(rec, colRazaoSocial)
		}
		if name == "" {
			skipped++
			continue
		}

		row := unitRow{CNES: code, Name: name, Address: buildAddress(
			field(rec, colLogradouro), field(rec, colNumero), field(rec, colBairro),
		)}
		if pos, dup := byName[name]; dup {
			rows[pos] = row
			continue
		}
		byName[name] = len(rows)
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

// buildAddress arma "Logradouro, Número - Bairro" omitiendo partes vacías.
func buildAddress(street, number, district string) string {
	addr := street
	if number != "" && !strings.EqualFold(number, "S/N") {
		if addr != "" {
			addr += ", "
		}
		addr += number
	}
	if district != "" {
		if addr != "" {
			addr += " - "
		}
		addr += district
	}
	return addr
}
