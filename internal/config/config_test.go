package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		dre     DRE
		wantErr bool
	}{
		{
			name: "Valores padrão - válido",
			dre:  DRE{VariableRatioFallback: 0.30, HistoricalTicketMonths: 6, TopN: 5},
		},
		{
			name:    "Razão igual a 1 - inválido",
			dre:     DRE{VariableRatioFallback: 1, HistoricalTicketMonths: 6},
			wantErr: true,
		},
		{
			name:    "Razão negativa - inválido",
			dre:     DRE{VariableRatioFallback: -0.1, HistoricalTicketMonths: 6},
			wantErr: true,
		},
		{
			name:    "Janela histórica zerada - inválido",
			dre:     DRE{VariableRatioFallback: 0.30},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{DRE: tt.dre}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVariableRatio(t *testing.T) {
	ratio := DRE{VariableRatioFallback: 0.3}.VariableRatio()
	assert.Equal(t, "0.3", ratio.String())
}
