package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CompanyStore reads the registry tables. Every method issues a single
// read-only query with the CNPJ bound as a parameter.
type CompanyStore struct {
	db *sqlx.DB
}

func NewCompanyStore(db *sqlx.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

const companyQuery = `
	SELECT
		e.cnpj,
		e.identificador_matriz_filial,
		e.razao_social,
		e.nome_fantasia,
		e.situacao_cadastral,
		e.data_situacao_cadastral,
		e.motivo_situacao_cadastral,
		e.nome_cidade_exterior,
		e.codigo_natureza_juridica,
		e.data_inicio_atividade,
		e.cnae_fiscal,
		c.descricao AS cnae_fiscal_descricao,
		e.descricao_tipo_logradouro,
		e.logradouro,
		e.numero,
		e.complemento,
		e.bairro,
		e.cep,
		e.uf,
		e.codigo_municipio,
		e.municipio,
		e.ddd_telefone_1,
		e.ddd_telefone_2,
		e.ddd_fax,
		e.qualificacao_do_responsavel,
		e.capital_social,
		e.porte,
		e.opcao_pelo_simples,
		e.data_opcao_pelo_simples,
		e.data_exclusao_do_simples,
		e.opcao_pelo_mei,
		e.situacao_especial,
		e.data_situacao_especial
	FROM
		empresa e
	LEFT JOIN
		cnae c ON e.cnae_fiscal = c.codigo
	WHERE
		e.cnpj = $1;
	`

const secondaryActivitiesQuery = `
	SELECT
		cs.cnae AS codigo,
		c.descricao AS descricao
	FROM
		cnae_secundaria cs
	INNER JOIN
		cnae c ON cs.cnae = c.codigo
	WHERE
		cs.cnpj = $1
	ORDER BY
		cs.cnae;
	`

const partnersQuery = `
	SELECT
		identificador_de_socio,
		nome_socio,
		cnpj_cpf_do_socio,
		codigo_qualificacao_socio,
		percentual_capital_social,
		data_entrada_sociedade,
		cpf_representante_legal,
		nome_representante_legal,
		codigo_qualificacao_representante_legal
	FROM
		socio
	WHERE
		cnpj = $1
	ORDER BY
		nome_socio;
	`

// GetCompany returns ErrNotFound when no row matches.
func (cs *CompanyStore) GetCompany(ctx context.Context, cnpj string) (*CompanyRecord, error) {
	var record CompanyRecord
	err := cs.db.GetContext(ctx, &record, companyQuery, cnpj)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query company %s: %w", cnpj, err)
	}

	return &record, nil
}

// GetSecondaryActivities returns nil, not an empty slice, when the company
// has no secondary activities on record.
func (cs *CompanyStore) GetSecondaryActivities(ctx context.Context, cnpj string) ([]SecondaryActivity, error) {
	var result []SecondaryActivity
	err := cs.db.SelectContext(ctx, &result, secondaryActivitiesQuery, cnpj)
	if err != nil {
		return nil, fmt.Errorf("failed to query secondary activities of %s: %w", cnpj, err)
	}
	if len(result) == 0 {
		return nil, nil
	}

	return result, nil
}

// GetPartners returns nil, not an empty slice, when no partner is on record.
func (cs *CompanyStore) GetPartners(ctx context.Context, cnpj string) ([]Partner, error) {
	var result []Partner
	err := cs.db.SelectContext(ctx, &result, partnersQuery, cnpj)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners of %s: %w", cnpj, err)
	}
	if len(result) == 0 {
		return nil, nil
	}

	return result, nil
}
