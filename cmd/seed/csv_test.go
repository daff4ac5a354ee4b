package main

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestParseCSV(t *testing.T) {
	in := "nome;quantidade;unidade;quantidade_minima;validade;fornecedor\n" +
		"Farinha;5;kg;2;;Moinho Sul\n" +
		"Leite;1,5;l;2;20/10/2026;\n" +
		"\n" +
		"Sal;10;kg;1\n"

	rows, err := ParseCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "Farinha", rows[0].Request.Nome)
	assert.Nil(t, rows[0].Request.Validade)
	require.NotNil(t, rows[0].Request.Fornecedor)
	assert.Equal(t, "Moinho Sul", *rows[0].Request.Fornecedor)

	assert.True(t, rows[1].Request.Quantidade.Equal(decimal.RequireFromString("1.5")))
	require.NotNil(t, rows[1].Request.Validade)
	assert.Equal(t, "2026-10-20", *rows[1].Request.Validade)
	assert.Nil(t, rows[1].Request.Fornecedor)

	assert.Equal(t, "Sal", rows[2].Request.Nome)
	assert.Equal(t, 5, rows[2].Line)
}

func TestParseCSV_Errores(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("Farinha;cinco;kg;2\n"))
	assert.ErrorContains(t, err, "línea 1")

	_, err = ParseCSV(strings.NewReader("Farinha;5\n"))
	assert.Error(t, err)

	_, err = ParseCSV(strings.NewReader("Farinha;5;kg;2;2026/10/20\n"))
	assert.ErrorContains(t, err, "validade")
}

func TestParseCSV_Latin1(t *testing.T) {
	raw, err := charmap.ISO8859_1.NewEncoder().String("Açúcar;3;kg;1\n")
	require.NoError(t, err)

	rows, err := ParseCSV(transform.NewReader(strings.NewReader(raw), charmap.ISO8859_1.NewDecoder()))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Açúcar", rows[0].Request.Nome)
}
