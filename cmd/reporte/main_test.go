package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ahoraFija = time.Date(2025, time.July, 15, 10, 0, 0, 0, time.UTC)

func TestResolverPeriodo_Explicito(t *testing.T) {
	anio, mes, err := resolverPeriodo(2024, 3, ahoraFija)

	require.NoError(t, err)
	assert.Equal(t, 2024, anio)
	assert.Equal(t, 3, mes)
}

func TestResolverPeriodo_DefectosDeFechaActual(t *testing.T) {
	anio, mes, err := resolverPeriodo(0, 0, ahoraFija)

	require.NoError(t, err)
	assert.Equal(t, 2025, anio)
	assert.Equal(t, 7, mes)
}

func TestResolverPeriodo_SoloMesPorDefecto(t *testing.T) {
	anio, mes, err := resolverPeriodo(2023, 0, ahoraFija)

	require.NoError(t, err)
	assert.Equal(t, 2023, anio)
	assert.Equal(t, 7, mes)
}

func TestResolverPeriodo_MesInvalido(t *testing.T) {
	_, _, err := resolverPeriodo(2025, 13, ahoraFija)

	assert.Error(t, err)
}

func TestResolverAnios_Lista(t *testing.T) {
	anios, err := resolverAnios(" 2023, 2024 ,2025", ahoraFija)

	require.NoError(t, err)
	assert.Equal(t, []int{2023, 2024, 2025}, anios)
}

func TestResolverAnios_DefectoUltimosTres(t *testing.T) {
	anios, err := resolverAnios("  ", ahoraFija)

	require.NoError(t, err)
	assert.Equal(t, []int{2023, 2024, 2025}, anios)
}

func TestResolverAnios_Invalido(t *testing.T) {
	_, err := resolverAnios("2023,dos mil", ahoraFija)

	assert.Error(t, err)
}
