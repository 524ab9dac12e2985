package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ergung/position-calculator/risk"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Values
		want risk.Inputs
	}{
		{
			name: "unit mode",
			in:   Values{Entry: "100", Stop: "95", MaxLoss: "50"},
			want: risk.Inputs{EntryPrice: 100, StopPrice: 95, MaxLoss: 50},
		},
		{
			name: "contract mode with reward",
			in:   Values{Entry: " 100 ", Stop: "105", MaxLoss: "50", ContractSize: "1", Reward: "2", UseContract: true},
			want: risk.Inputs{EntryPrice: 100, StopPrice: 105, MaxLoss: 50, ContractSize: 1, RewardMultiple: 2},
		},
		{
			name: "contract size ignored when disabled",
			in:   Values{Entry: "100", Stop: "95", MaxLoss: "50", ContractSize: "10"},
			want: risk.Inputs{EntryPrice: 100, StopPrice: 95, MaxLoss: 50},
		},
		{
			name: "unparsable reward means no target",
			in:   Values{Entry: "100", Stop: "95", MaxLoss: "50", Reward: "abc"},
			want: risk.Inputs{EntryPrice: 100, StopPrice: 95, MaxLoss: 50},
		},
		{
			name: "negative max loss left for the calculator",
			in:   Values{Entry: "100", Stop: "95", MaxLoss: "-5"},
			want: risk.Inputs{EntryPrice: 100, StopPrice: 95, MaxLoss: -5},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := tt.in.Parse()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    Values
		field string
		msg   string
	}{
		{"missing entry", Values{Stop: "95", MaxLoss: "50"}, "entry", "entry price is required"},
		{"text stop", Values{Entry: "100", Stop: "ninety", MaxLoss: "50"}, "stop", `stop-loss price: "ninety" is not a number`},
		{"nan max loss", Values{Entry: "100", Stop: "95", MaxLoss: "NaN"}, "max_loss", `max loss: "NaN" is not a number`},
		{"inf entry", Values{Entry: "Inf", Stop: "95", MaxLoss: "50"}, "entry", `entry price: "Inf" is not a number`},
		{"empty contract size", Values{Entry: "100", Stop: "95", MaxLoss: "50", UseContract: true}, "contract_size", "contract size is required"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.in.Parse()
			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.field, pe.Field)
			assert.Equal(t, tt.msg, pe.Error())
		})
	}
}

func TestParse_ZeroContractSize(t *testing.T) {
	t.Parallel()

	_, err := Values{Entry: "100", Stop: "95", MaxLoss: "50", ContractSize: "0", UseContract: true}.Parse()
	var ve *risk.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "contract_size", ve.Field)
}
