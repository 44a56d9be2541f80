// Package render turns a declaration template plus requester data into
// the body and footer text of the final document. It performs no I/O.
package render

import (
	"fmt"
	"strings"
	"time"

	"declarations-backend/internal/domain"
)

// Fields maps template placeholder names to their substituted values.
type Fields map[string]string

var ptBRMonths = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Substitute replaces every {{key}} occurrence with the mapped value.
// Tokens without a mapping are left verbatim.
func Substitute(template string, fields Fields) string {
	result := template
	for key, value := range fields {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}

// BuildFields assembles the placeholder values for a request. The
// director may be nil for requester-signed declarations; its fields
// resolve to empty strings so substitution stays total.
func BuildFields(requester *domain.User, director *domain.User, now time.Time) Fields {
	fields := Fields{
		"nome":          requester.Name,
		"rua":           requester.Street,
		"numero_casa":   requester.HouseNumber,
		"complemento":   requester.Complement,
		"bairro":        requester.Neighborhood,
		"cidade":        requester.City,
		"estado":        requester.State,
		"cep":           FormatCEP(requester.PostalCode),
		"data_atual":    FormatLongDate(now),
		"rg":            FormatRG(requester.RG),
		"cpf":           FormatCPF(requester.CPF),
		"orgao_emissor": requester.IssuingAgency,
		"diretor_nome":  "",
		"diretor_cpf":   "",
		"diretor_cargo": "",
	}
	if director != nil {
		fields["diretor_nome"] = director.Name
		fields["diretor_cpf"] = FormatCPF(director.CPF)
		fields["diretor_cargo"] = director.JobTitle
	}
	return fields
}

// ComposeFooter appends the signature block matching the declaration's
// signature type and substitutes the result.
func ComposeFooter(footer string, signature domain.SignatureType, fields Fields) string {
	switch signature {
	case domain.SignatureTypeRequester:
		footer += "\n \n{{nome}}\nRG nº {{rg}}/{{orgao_emissor}}\nCPF/MF nº {{cpf}}"
	case domain.SignatureTypeDirector:
		footer += "\n \n{{diretor_nome}}\nCPF: {{diretor_cpf}}\n{{diretor_cargo}}"
	}
	return Substitute(footer, fields)
}

// Render produces the document body and footer for a declaration.
func Render(decl *domain.Declaration, requester, director *domain.User, now time.Time) (body, footer string) {
	fields := BuildFields(requester, director, now)
	return Substitute(decl.Content, fields), ComposeFooter(decl.Footer, decl.SignatureType, fields)
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCEP normalizes a postal code to 8 digits and renders NNNNN-NNN.
func FormatCEP(cep string) string {
	d := digits(cep)
	for len(d) < 8 {
		d = "0" + d
	}
	return d[:5] + "-" + d[5:]
}

// FormatCPF renders an 11-digit CPF as NNN.NNN.NNN-NN. Inputs that do
// not carry 11 digits come back stripped but unmasked.
func FormatCPF(cpf string) string {
	d := digits(cpf)
	if len(d) != 11 {
		return d
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

// FormatRG renders a 9-digit RG as NN.NNN.NNN-N. Inputs that do not
// carry 9 digits come back stripped but unmasked.
func FormatRG(rg string) string {
	d := digits(rg)
	if len(d) != 9 {
		return d
	}
	return d[:2] + "." + d[2:5] + "." + d[5:8] + "-" + d[8:]
}

// FormatLongDate renders the issuing organization's long date form,
// e.g. "07 de março de 2026".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), ptBRMonths[t.Month()-1], t.Year())
}
