package cli

// Messages is the catalog of user-facing diagnostics for one language.
// Fields ending in "f" are fmt format strings taking the offending argument.
type Messages struct {
	InvalidBatch      string
	InvalidName       string
	InvalidDate       string
	InvalidQuantity   string
	TooManyVaccines   string
	DuplicateBatch    string
	InvalidArguments  string
	AlreadyVaccinated string
	NoStock           string
	MissingBatch      string
	NoSuchBatchf      string
	NoSuchVaccinef    string
	NoSuchUserf       string
}

var english = &Messages{
	InvalidBatch:      "invalid batch",
	InvalidName:       "invalid name",
	InvalidDate:       "invalid date",
	InvalidQuantity:   "invalid quantity",
	TooManyVaccines:   "too many vaccines",
	DuplicateBatch:    "duplicate batch number",
	InvalidArguments:  "invalid arguments",
	AlreadyVaccinated: "already vaccinated",
	NoStock:           "no stock",
	MissingBatch:      "missing batch",
	NoSuchBatchf:      "%s: no such batch",
	NoSuchVaccinef:    "%s: no such vaccine",
	NoSuchUserf:       "%s: no such user",
}

var portuguese = &Messages{
	InvalidBatch:      "lote inválido",
	InvalidName:       "nome inválido",
	InvalidDate:       "data inválida",
	InvalidQuantity:   "quantidade inválida",
	TooManyVaccines:   "demasiadas vacinas",
	DuplicateBatch:    "número de lote duplicado",
	InvalidArguments:  "argumentos inválidos",
	AlreadyVaccinated: "já vacinado",
	NoStock:           "esgotado",
	MissingBatch:      "lote em falta",
	NoSuchBatchf:      "%s: lote inexistente",
	NoSuchVaccinef:    "%s: vacina inexistente",
	NoSuchUserf:       "%s: utente inexistente",
}

// CatalogFor returns the catalog for lang; any value other than "pt"
// selects English.
func CatalogFor(lang string) *Messages {
	if lang == "pt" {
		return portuguese
	}
	return english
}
