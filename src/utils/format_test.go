package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"percetakan-backend/src/utils"
)

func TestFormatRupiah(t *testing.T) {
	t.Run("zero fraction digits", func(t *testing.T) {
		assert.Equal(t, "Rp0", utils.FormatRupiah(0))
		assert.NotContains(t, utils.FormatRupiah(1500.75), ",75")
	})

	t.Run("indonesian grouping", func(t *testing.T) {
		got := utils.FormatRupiah(1500000)
		assert.Contains(t, got, "1.500.000")
	})
}

func TestDayMonthLabel(t *testing.T) {
	t.Run("localized day month", func(t *testing.T) {
		assert.Equal(t, "2 Jan", utils.DayMonthLabel("2024-01-02"))
		assert.Equal(t, "15 Agu", utils.DayMonthLabel("2024-08-15"))
	})

	t.Run("unparseable date passes through", func(t *testing.T) {
		assert.Equal(t, "bukan-tanggal", utils.DayMonthLabel("bukan-tanggal"))
	})
}

func TestMonthLabels(t *testing.T) {
	labels := utils.MonthLabels()
	assert.Len(t, labels, 12)
	assert.Equal(t, "Januari", labels[0])
	assert.Equal(t, "Desember", labels[11])

	// Salinan, bukan slice internal
	labels[0] = "X"
	assert.Equal(t, "Januari", utils.MonthLabels()[0])
}
