package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmanager/internal/application/dto"
)

// Row fila del CSV ya convertida; Line es la línea del archivo (1-based) para los logs.
type Row struct {
	Line    int
	Request dto.IngredientRequest
}

// ParseCSV lee todas las filas. Un error de formato en cualquier fila aborta la lectura.
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []Row
	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if first && strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(rec[0], "\ufeff")), "nome") {
			continue
		}
		req, err := parseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		rows = append(rows, Row{Line: line, Request: req})
	}
	return rows, nil
}

func parseRecord(rec []string) (dto.IngredientRequest, error) {
	if len(rec) < 4 {
		return dto.IngredientRequest{}, fmt.Errorf("se esperaban al menos 4 columnas, hay %d", len(rec))
	}
	field := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	qtd, err := parseDecimal(field(1))
	if err != nil {
		return dto.IngredientRequest{}, fmt.Errorf("quantidade: %w", err)
	}
	minima, err := parseDecimal(field(3))
	if err != nil {
		return dto.IngredientRequest{}, fmt.Errorf("quantidade_minima: %w", err)
	}

	req := dto.IngredientRequest{
		Nome:             field(0),
		Quantidade:       &qtd,
		Unidade:          field(2),
		QuantidadeMinima: &minima,
	}
	if v := field(4); v != "" {
		d, err := normalizeDate(v)
		if err != nil {
			return dto.IngredientRequest{}, err
		}
		req.Validade = &d
	}
	if v := field(5); v != "" {
		req.Fornecedor = &v
	}
	return req, nil
}

// parseDecimal acepta "1.5" y "1,5".
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.Replace(s, ",", ".", 1))
}

// normalizeDate devuelve AAAA-MM-DD a partir de AAAA-MM-DD o DD/MM/AAAA.
func normalizeDate(s string) (string, error) {
	if t, err := time.Parse(dto.DateLayout, s); err == nil {
		return t.Format(dto.DateLayout), nil
	}
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return "", fmt.Errorf("validade %q: use AAAA-MM-DD o DD/MM/AAAA", s)
	}
	return t.Format(dto.DateLayout), nil
}
