package store

// CompanyRecord represents one row of the 'empresa' table joined with the
// description of its primary CNAE. Nullable columns are pointers and render
// as JSON null.
type CompanyRecord struct {
	CNPJ                     string   `db:"cnpj" json:"cnpj"`
	BranchIdentifier         *int     `db:"identificador_matriz_filial" json:"identificador_matriz_filial"`
	LegalName                string   `db:"razao_social" json:"razao_social"`
	TradeName                *string  `db:"nome_fantasia" json:"nome_fantasia"`
	RegistrationStatus       *int     `db:"situacao_cadastral" json:"situacao_cadastral"`
	RegistrationStatusDate   *Date    `db:"data_situacao_cadastral" json:"data_situacao_cadastral"`
	RegistrationStatusReason *int     `db:"motivo_situacao_cadastral" json:"motivo_situacao_cadastral"`
	ForeignCityName          *string  `db:"nome_cidade_exterior" json:"nome_cidade_exterior"`
	LegalNatureCode          *int     `db:"codigo_natureza_juridica" json:"codigo_natureza_juridica"`
	ActivityStartDate        *Date    `db:"data_inicio_atividade" json:"data_inicio_atividade"`
	PrimaryCNAE              *int     `db:"cnae_fiscal" json:"cnae_fiscal"`
	PrimaryCNAEDescription   *string  `db:"cnae_fiscal_descricao" json:"cnae_fiscal_descricao"`
	StreetType               *string  `db:"descricao_tipo_logradouro" json:"descricao_tipo_logradouro"`
	Street                   *string  `db:"logradouro" json:"logradouro"`
	Number                   *string  `db:"numero" json:"numero"`
	Complement               *string  `db:"complemento" json:"complemento"`
	Neighborhood             *string  `db:"bairro" json:"bairro"`
	ZipCode                  *int     `db:"cep" json:"cep"`
	State                    *string  `db:"uf" json:"uf"`
	MunicipalityCode         *int     `db:"codigo_municipio" json:"codigo_municipio"`
	Municipality             *string  `db:"municipio" json:"municipio"`
	Phone1                   *string  `db:"ddd_telefone_1" json:"ddd_telefone_1"`
	Phone2                   *string  `db:"ddd_telefone_2" json:"ddd_telefone_2"`
	Fax                      *string  `db:"ddd_fax" json:"ddd_fax"`
	ResponsibleQualification *int     `db:"qualificacao_do_responsavel" json:"qualificacao_do_responsavel"`
	ShareCapital             *Decimal `db:"capital_social" json:"capital_social"`
	Size                     *int     `db:"porte" json:"porte"`
	SimplesOption            *bool    `db:"opcao_pelo_simples" json:"opcao_pelo_simples"`
	SimplesOptionDate        *Date    `db:"data_opcao_pelo_simples" json:"data_opcao_pelo_simples"`
	SimplesExclusionDate     *Date    `db:"data_exclusao_do_simples" json:"data_exclusao_do_simples"`
	MEIOption                *bool    `db:"opcao_pelo_mei" json:"opcao_pelo_mei"`
	SpecialSituation         *string  `db:"situacao_especial" json:"situacao_especial"`
	SpecialSituationDate     *Date    `db:"data_situacao_especial" json:"data_situacao_especial"`
}

// SecondaryActivity is a 'cnae_secundaria' row resolved against 'cnae'.
type SecondaryActivity struct {
	Code        int    `db:"codigo" json:"codigo"`
	Description string `db:"descricao" json:"descricao"`
}

// Partner represents the 'socio' table.
type Partner struct {
	PartnerType                      *int     `db:"identificador_de_socio" json:"identificador_de_socio"`
	Name                             *string  `db:"nome_socio" json:"nome_socio"`
	TaxID                            *string  `db:"cnpj_cpf_do_socio" json:"cnpj_cpf_do_socio"`
	QualificationCode                *int     `db:"codigo_qualificacao_socio" json:"codigo_qualificacao_socio"`
	CapitalShare                     *Decimal `db:"percentual_capital_social" json:"percentual_capital_social"`
	EntryDate                        *Date    `db:"data_entrada_sociedade" json:"data_entrada_sociedade"`
	LegalRepresentativeTaxID         *string  `db:"cpf_representante_legal" json:"cpf_representante_legal"`
	LegalRepresentativeName          *string  `db:"nome_representante_legal" json:"nome_representante_legal"`
	LegalRepresentativeQualification *int     `db:"codigo_qualificacao_representante_legal" json:"codigo_qualificacao_representante_legal"`
}

// CompanyDocument is the aggregate handed back to clients. A nil collection
// means the registry holds no rows for it and renders as null.
type CompanyDocument struct {
	CompanyRecord
	SecondaryActivities []SecondaryActivity `json:"cnaes_secundarios"`
	Partners            []Partner           `json:"qsa"`
}

// Classification represents the 'cnae' table.
type Classification struct {
	Code        int    `db:"codigo" json:"codigo"`
	Description string `db:"descricao" json:"descricao"`
}
