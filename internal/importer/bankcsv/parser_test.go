package bankcsv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MrJamesThe3rd/gillpay/internal/importer/bankcsv"
	"github.com/MrJamesThe3rd/gillpay/internal/transaction"
)

func draft(kind transaction.Kind, desc, amount, date string) transaction.Draft {
	return transaction.Draft{
		Kind:        string(kind),
		Category:    "Other",
		Description: desc,
		Amount:      amount,
		Date:        date,
	}
}

func TestParser_Conta(t *testing.T) {
	csv := `Consultar saldos e movimentos à ordem - 31-01-2026;"=""0000"""
Nome cliente;JOHN DOE
NIF;"=""123"""

Dados da conta
Conta;0000 - EUR - Conta Extracto
Saldo contabilístico;1.000,00 EUR
Saldo disponível;1.000,00 EUR

Dados da consulta
Período;Últimos 90 dias
Intervalo de;01-01-2026 a 31-01-2026
Tipos de movimento;Todos

Data mov.;Data-valor;Descrição;Montante;Saldo contabilístico após movimento
30-01-2026;30-01-2026;INSTITUTO GESTAO FINA;-588,74;48.825,46
09-01-2026;09-01-2026;TFI Wise;8.608,52;52.532,78
`

	p := bankcsv.NewParser()
	stmt, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Drafts, 2)

	assert.Equal(t, "cgd conta", stmt.Format)
	assert.Equal(t, draft(transaction.KindExpense, "INSTITUTO GESTAO FINA", "588.74", "2026/01/30"), stmt.Drafts[0])
	assert.Equal(t, draft(transaction.KindIncome, "TFI Wise", "8608.52", "2026/01/09"), stmt.Drafts[1])
}

func TestParser_Extrato(t *testing.T) {
	csv := `Consultar extrato - 15-02-2026 : 0829015676030
Nome empresa ;VIBRANTGARDEN UNIPESSOAL,LDA
NIF ;517948974
Conta ;0829015676030 - EUR - Conta Extracto
Intervalo de ;01-02-2026 a 14-02-2026
Tipos de movimento ;Todos
Saldo contabilístico Inicial ;48.825,46
Saldo contabilístico final ;41.393,66

Data mov. ;Data valor ;Origem ;Descrição ;Movimento ;Estorno ;Saldo contabilístico após movimento ;
13-02-2026;13-02-2026;"=""0003""";PAGAMENTO TSU ;-608,13;  ;41.393,66;
04-02-2026;04-02-2026;SIBS ;TFI Wise ;4.324,06;  ;51.302,85;
`

	p := bankcsv.NewParser()
	stmt, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Drafts, 2)

	assert.Equal(t, "cgd extrato", stmt.Format)
	assert.Equal(t, draft(transaction.KindExpense, "PAGAMENTO TSU", "608.13", "2026/02/13"), stmt.Drafts[0])
	assert.Equal(t, draft(transaction.KindIncome, "TFI Wise", "4324.06", "2026/02/04"), stmt.Drafts[1])
}

func TestParser_Cartao(t *testing.T) {
	csv := `Consultar saldos e movimentos de cartões - 15-02-2026
Nome empresa ;VIBRANTGARDEN UNIPESSOAL,LDA
NIF ;517948974

Conta cartão ;4163 **** **** 8016 - EUR - Business Débito
Tipo de movimentos ;Conta à ordem
Desde ;15/12/2025

Data ;Data valor ;Descrição ;Débito ;Crédito ;
16-12-2025 ;14-12-2025 ;PA GONDOMAR         GONDOMAR ;64,00 ; ;
31-12-2025 ;29-12-2025 ;UBER   *TRIP             HELP.UBER.COMNL ;47,91 ; ;
 ; ; ; ;Página 1/2 ;
`

	p := bankcsv.NewParser()
	stmt, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Drafts, 2)

	assert.Equal(t, "cgd cartão", stmt.Format)
	assert.Equal(t, draft(transaction.KindExpense, "PA GONDOMAR         GONDOMAR", "64", "2025/12/16"), stmt.Drafts[0])
	assert.Equal(t, draft(transaction.KindExpense, "UBER   *TRIP             HELP.UBER.COMNL", "47.91", "2025/12/31"), stmt.Drafts[1])
}

func TestParser_CartaoCredit(t *testing.T) {
	csv := `Data ;Data valor ;Descrição ;Débito ;Crédito ;
16-12-2025 ;14-12-2025 ;REFUND AMAZON ;  ;25,00 ;
`

	p := bankcsv.NewParser()
	stmt, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Drafts, 1)

	assert.Equal(t, "25", stmt.Drafts[0].Amount)
	assert.Equal(t, string(transaction.KindIncome), stmt.Drafts[0].Kind)
}

func TestParser_Latin1Encoding(t *testing.T) {
	utf8CSV := "Data mov.;Descrição;Montante\n30-01-2026;CAFÉ CENTRAL;-10,00\n"

	encoder := charmap.Windows1252.NewEncoder()
	latin1Bytes, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := bankcsv.NewParser()
	stmt, err := p.Parse(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)
	require.Len(t, stmt.Drafts, 1)

	assert.Equal(t, "CAFÉ CENTRAL", stmt.Drafts[0].Description)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	csv := `Random;MetaData
Montante;Descrição;Data mov.;Ignored
-10,00;TEST_ORDER;30-01-2026;XXX
`

	p := bankcsv.NewParser()
	stmt, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Drafts, 1)

	assert.Equal(t, "TEST_ORDER", stmt.Drafts[0].Description)
	assert.Equal(t, "10", stmt.Drafts[0].Amount)
}

func TestParser_Signed(t *testing.T) {
	csv := `Date,Description,Amount,Balance
2025/10/05,Coffee shop,-3.50,996.50
10/06/2025,"Refund, partial","$1,250.00",2246.50
Total,,,
`

	p := bankcsv.NewParser()
	stmt, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Drafts, 2)

	assert.Equal(t, "signed", stmt.Format)
	assert.Equal(t, draft(transaction.KindExpense, "Coffee shop", "3.5", "2025/10/05"), stmt.Drafts[0])
	assert.Equal(t, draft(transaction.KindIncome, "Refund, partial", "1250", "2025/10/06"), stmt.Drafts[1])
}

func TestParser_SignedCurrencyForms(t *testing.T) {
	csv := `Date,Description,Amount
2025/10/01,Coffee,-$4.50
2025/10/02,Pay,$100.00
2025/10/03,Card fee,(2.00)
`

	p := bankcsv.NewParser()
	stmt, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Drafts, 3)

	assert.Equal(t, draft(transaction.KindExpense, "Coffee", "4.5", "2025/10/01"), stmt.Drafts[0])
	assert.Equal(t, draft(transaction.KindIncome, "Pay", "100", "2025/10/02"), stmt.Drafts[1])
	assert.Equal(t, draft(transaction.KindExpense, "Card fee", "2", "2025/10/03"), stmt.Drafts[2])
}

func TestParser_InvalidAmount(t *testing.T) {
	type testCase struct {
		name    string
		csv     string
		wantErr string
	}

	tests := []testCase{
		{
			name:    "Signed",
			csv:     "Date,Description,Amount\n2025/10/01,Coffee,four fifty\n",
			wantErr: `row 2: invalid amount "four fifty"`,
		},
		{
			name:    "Debit",
			csv:     "date;description;debit;credit\n2025-10-05;Groceries;abc;\n",
			wantErr: `row 2: invalid debit "abc"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bankcsv.NewParser().Parse(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParser_Split(t *testing.T) {
	csv := `date;description;debit;credit
2025-10-05;Groceries;42.10;
2025-10-06;Salary;;2000
`

	p := bankcsv.NewParser()
	stmt, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Drafts, 2)

	assert.Equal(t, "split", stmt.Format)
	assert.Equal(t, draft(transaction.KindExpense, "Groceries", "42.1", "2025/10/05"), stmt.Drafts[0])
	assert.Equal(t, draft(transaction.KindIncome, "Salary", "2000", "2025/10/06"), stmt.Drafts[1])
}

func TestParser_Ledger(t *testing.T) {
	csv := `transaction,category,description,amount,date
income,Salary,October pay,1000,2025/10/01

expense,Food,Lunch,12.50,10/05/2025
`

	p := bankcsv.NewParser()
	stmt, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Drafts, 2)

	assert.Equal(t, "gillpay", stmt.Format)
	assert.Equal(t, transaction.Draft{
		Kind: "income", Category: "Salary", Description: "October pay", Amount: "1000", Date: "2025/10/01",
	}, stmt.Drafts[0])
	assert.Equal(t, transaction.Draft{
		Kind: "expense", Category: "Food", Description: "Lunch", Amount: "12.50", Date: "10/05/2025",
	}, stmt.Drafts[1])
}

func TestParser_EmptyFile(t *testing.T) {
	p := bankcsv.NewParser()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching statement format")
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `Data mov.;Data-valor;Descrição;Montante`

	p := bankcsv.NewParser()
	stmt, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, stmt.Drafts)
}

func TestParser_MissingDescription(t *testing.T) {
	csv := `Data mov.;Descrição;Montante
30-01-2026;;-10,00
`

	p := bankcsv.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "row 2: missing description")
}

func TestParser_LargeAmounts(t *testing.T) {
	csv := `Data mov.;Descrição;Montante
30-01-2026;BIG TRANSFER;-1.234.567,89
`

	p := bankcsv.NewParser()
	stmt, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Drafts, 1)

	assert.Equal(t, "1234567.89", stmt.Drafts[0].Amount)
}

func TestParser_SkipsFooterRows(t *testing.T) {
	csv := `Data mov.;Descrição;Montante
30-01-2026;TEST;-10,00
Totais;;;;
30-01-2026;ZERO;0,00
`

	p := bankcsv.NewParser()
	stmt, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, stmt.Drafts, 1)
}
