package invoice

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// Party is one side of an invoice with its billing profile fully resolved.
type Party struct {
	CompanyName string
	Username    string
	Email       string
	PhoneNumber string
	Address     string
	PostalCode  string
	City        string
	Country     string
	KVKNumber   string
	BTWNumber   string
}

// DisplayName prefers the company name over the account name.
func (p Party) DisplayName() string {
	if p.CompanyName != "" {
		return p.CompanyName
	}
	return p.Username
}

// Data is everything the invoice document renders.
type Data struct {
	Number      string
	Date        time.Time
	DueDate     time.Time
	ProjectName string
	Status      string
	Deadline    *time.Time
	CreatedAt   time.Time
	Developer   Party
	Client      Party
	Amount      float64
	VAT         float64
	Total       float64
}

// HTMLRenderer renders invoices as standalone HTML documents.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer creates a renderer with the invoice template parsed.
func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("€%.2f", v) },
		"date": func(v interface{}) string {
			switch t := v.(type) {
			case time.Time:
				return t.Format("02-01-2006")
			case *time.Time:
				if t != nil {
					return t.Format("02-01-2006")
				}
			}
			return ""
		},
	}
	return &HTMLRenderer{
		tmpl: template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceTemplate)),
	}
}

// Render produces the invoice document bytes.
func (r *HTMLRenderer) Render(data Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const invoiceTemplate = `<!DOCTYPE html>
<html lang="nl">
<head>
  <meta charset="UTF-8">
  <title>Factuur {{.Number}}</title>
  <style>
    body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 40px 20px; line-height: 1.6; color: #333; }
    .header { display: flex; justify-content: space-between; margin-bottom: 40px; border-bottom: 2px solid #007bff; padding-bottom: 20px; }
    .invoice-title { font-size: 28px; font-weight: bold; color: #007bff; }
    .parties { display: flex; justify-content: space-between; margin-bottom: 40px; }
    .party { width: 45%; }
    .party-title { font-weight: bold; margin-bottom: 10px; color: #007bff; }
    .party-info { background: #f8f9fa; padding: 15px; border-radius: 5px; }
    .project-details { background: #f8f9fa; padding: 20px; border-radius: 5px; margin-bottom: 30px; }
    .amount-table { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
    .amount-table th, .amount-table td { border: 1px solid #ddd; padding: 12px; text-align: left; }
    .amount-table th { background-color: #007bff; color: white; }
    .total-row { font-weight: bold; background-color: #f8f9fa; }
    .footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 14px; color: #666; }
  </style>
</head>
<body>
  <div class="header">
    <div>
      <div class="invoice-title">FACTUUR</div>
      <div>Cliento Project Management</div>
    </div>
    <div>
      <div><strong>Factuurnummer:</strong> {{.Number}}</div>
      <div><strong>Factuurdatum:</strong> {{date .Date}}</div>
      <div><strong>Vervaldatum:</strong> {{date .DueDate}}</div>
    </div>
  </div>

  <div class="parties">
    <div class="party">
      <div class="party-title">Van (Developer):</div>
      <div class="party-info">
        <div><strong>{{.Developer.DisplayName}}</strong></div>
        <div>{{.Developer.Email}}</div>
        {{if .Developer.PhoneNumber}}<div>{{.Developer.PhoneNumber}}</div>{{end}}
        <div>{{.Developer.Address}}</div>
        <div>{{.Developer.PostalCode}} {{.Developer.City}}</div>
        {{if .Developer.Country}}<div>{{.Developer.Country}}</div>{{end}}
        <div>KVK: {{.Developer.KVKNumber}}</div>
        <div>BTW: {{.Developer.BTWNumber}}</div>
      </div>
    </div>
    <div class="party">
      <div class="party-title">Aan (Klant):</div>
      <div class="party-info">
        <div><strong>{{.Client.DisplayName}}</strong></div>
        <div>{{.Client.Email}}</div>
        {{if .Client.PhoneNumber}}<div>{{.Client.PhoneNumber}}</div>{{end}}
        <div>{{.Client.Address}}</div>
        <div>{{.Client.PostalCode}} {{.Client.City}}</div>
        {{if .Client.Country}}<div>{{.Client.Country}}</div>{{end}}
        <div>KVK: {{.Client.KVKNumber}}</div>
        <div>BTW: {{.Client.BTWNumber}}</div>
      </div>
    </div>
  </div>

  <div class="project-details">
    <div><strong>Projectnaam:</strong> {{.ProjectName}}</div>
    <div><strong>Status:</strong> {{.Status}}</div>
    {{if .Deadline}}<div><strong>Deadline:</strong> {{date .Deadline}}</div>{{end}}
    <div><strong>Aanmaakdatum:</strong> {{date .CreatedAt}}</div>
  </div>

  <table class="amount-table">
    <thead>
      <tr><th>Omschrijving</th><th>Aantal</th><th>Prijs per eenheid</th><th>Totaal (excl. BTW)</th></tr>
    </thead>
    <tbody>
      <tr><td>Ontwikkeling project: {{.ProjectName}}</td><td>1</td><td>{{money .Amount}}</td><td>{{money .Amount}}</td></tr>
      <tr class="total-row"><td colspan="3"><strong>Subtotaal (excl. BTW)</strong></td><td><strong>{{money .Amount}}</strong></td></tr>
      <tr class="total-row"><td colspan="3"><strong>BTW (21%)</strong></td><td><strong>{{money .VAT}}</strong></td></tr>
      <tr class="total-row"><td colspan="3"><strong>Totaal (incl. BTW)</strong></td><td><strong>{{money .Total}}</strong></td></tr>
    </tbody>
  </table>

  <div class="footer">
    <div>Gelieve het factuurbedrag van {{money .Total}} te voldoen binnen 30 dagen na factuurdatum.</div>
    <div>Voor vragen over deze factuur kunt u contact opnemen via {{.Developer.Email}}</div>
  </div>
</body>
</html>
`
