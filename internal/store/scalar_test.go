package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2013, time.October, 3))
	require.NoError(t, err)
	assert.Equal(t, `"2013-10-03"`, string(b))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2019-02-14"`), &d))
	assert.Equal(t, NewDate(2019, time.February, 14), d)

	assert.Error(t, json.Unmarshal([]byte(`20190214`), &d))
}

func TestDateScan(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	cases := []struct {
		name string
		src  any
		want string
	}{
		{"time drops clock and zone", time.Date(2013, 10, 3, 23, 30, 0, 0, saoPaulo), "2013-10-03"},
		{"string", "2019-02-14", "2019-02-14"},
		{"bytes with timestamp", []byte("2019-02-14T00:00:00Z"), "2019-02-14"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tc.src))
			assert.Equal(t, tc.want, d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(int64(20190214)))
	assert.Error(t, d.Scan("14/02/2019"))
}

func TestDecimalJSON(t *testing.T) {
	pi, err := NewDecimal("3.1415")
	require.NoError(t, err)

	b, err := json.Marshal(pi)
	require.NoError(t, err)
	assert.Equal(t, `3.1415`, string(b))

	zero, err := NewDecimal("0.00")
	require.NoError(t, err)
	b, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, `0`, string(b))
}

func TestDecimalScanKeepsPrecision(t *testing.T) {
	var d Decimal
	require.NoError(t, d.Scan([]byte("12345678901234567890.123456789")))
	assert.Equal(t, "12345678901234567890.123456789", d.String())

	var bad Decimal
	assert.Error(t, bad.Scan([]byte("not a number")))
}

func TestFixtureSerialization(t *testing.T) {
	pi, err := NewDecimal("3.1415")
	require.NoError(t, err)
	fixture := struct {
		Date Date    `json:"date"`
		Pi   Decimal `json:"pi"`
	}{NewDate(2019, time.February, 14), pi}

	b, err := json.Marshal(fixture)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date": "2019-02-14", "pi": 3.1415}`, string(b))
}

func TestDocumentSerialization(t *testing.T) {
	founded := NewDate(2013, time.October, 3)
	doc := CompanyDocument{
		CompanyRecord: CompanyRecord{
			CNPJ:                   "19131243000197",
			LegalName:              "OPEN KNOWLEDGE BRASIL",
			RegistrationStatusDate: &founded,
		},
	}

	b, err := json.Marshal(doc)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))

	assert.Equal(t, "OPEN KNOWLEDGE BRASIL", out["razao_social"])
	assert.Equal(t, "2013-10-03", out["data_situacao_cadastral"])
	assert.Contains(t, out, "ddd_fax")
	assert.Nil(t, out["ddd_fax"])
	assert.Contains(t, out, "cnaes_secundarios")
	assert.Nil(t, out["cnaes_secundarios"])
	assert.Contains(t, out, "qsa")
	assert.Nil(t, out["qsa"])
}
