package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cliento-portal/lib/invoice"
	"github.com/cliento-portal/models"
)

func billingComplete(a models.Account, company string) models.Account {
	a.CompanyName = company
	a.Address = "Keizersgracht 1"
	a.PostalCode = "1015 CS"
	a.City = "Amsterdam"
	a.Country = "Nederland"
	a.KVKNumber = "12345678"
	a.BTWNumber = "NL123456789B01"
	return a
}

func newInvoiceFixture(t *testing.T, developer, client models.Account, budget *float64) *InvoiceService {
	t.Helper()
	projects := newMemProjectStore()
	project := fixtureProject(time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC))
	project.Budget = budget
	if _, err := projects.Create(project); err != nil {
		t.Fatalf("seed project: %v", err)
	}

	accounts := newMemAccountStore(developer, devAssigned, client)
	service := NewInvoiceService(projects, accounts, invoice.NewHTMLRenderer())
	service.now = func() time.Time { return time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC) }
	return service
}

func TestGenerateInvoice(t *testing.T) {
	budget := 2500.0
	developer := billingComplete(devCreator, "Anna Dev BV")
	client := billingComplete(clientOnPrj, "Daan Retail BV")
	service := newInvoiceFixture(t, developer, client, &budget)

	doc, filename, err := service.Generate(developer, "project-1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if filename != "factuur-Webshop-2026.html" {
		t.Errorf("filename = %q", filename)
	}

	html := string(doc)
	for _, want := range []string{
		"FACTUUR",
		"INV-2026-",
		"Anna Dev BV",
		"Daan Retail BV",
		"NL123456789B01",
		"€2500.00", // amount excl. VAT
		"€525.00",  // 21% VAT
		"€3025.00", // total
	} {
		if !strings.Contains(html, want) {
			t.Errorf("invoice missing %q", want)
		}
	}
}

func TestGenerateInvoiceMissingBillingData(t *testing.T) {
	budget := 2500.0

	tests := []struct {
		name      string
		developer models.Account
		client    models.Account
		budget    *float64
	}{
		{"developer incomplete", devCreator, billingComplete(clientOnPrj, "Daan Retail BV"), &budget},
		{"client incomplete", billingComplete(devCreator, "Anna Dev BV"), clientOnPrj, &budget},
		{"no budget", billingComplete(devCreator, "Anna Dev BV"), billingComplete(clientOnPrj, "Daan Retail BV"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newInvoiceFixture(t, tt.developer, tt.client, tt.budget)
			if _, _, err := service.Generate(tt.developer, "project-1"); !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestGenerateInvoiceForbidden(t *testing.T) {
	budget := 2500.0
	developer := billingComplete(devCreator, "Anna Dev BV")
	client := billingComplete(clientOnPrj, "Daan Retail BV")
	service := newInvoiceFixture(t, developer, client, &budget)

	other := billingComplete(devOther, "Cas Dev BV")
	if _, _, err := service.Generate(other, "project-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("unrelated developer: err = %v, want ErrForbidden", err)
	}
	if _, _, err := service.Generate(client, "project-1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("client: err = %v, want ErrForbidden", err)
	}
}
